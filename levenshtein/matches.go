package levenshtein

// GetBufferSize reports the scalar-unit size of the scratch state a
// caller would need to preallocate to scan a pattern of the given
// length without the engine falling back to a heap allocation: two
// rolling rows of edittrace.Trace, 3 ints each.
func GetBufferSize(patternLen int) int {
	return 6 * (patternLen + 1)
}

// MatchCollection is an eager, read-only view over every approximate
// occurrence of input inside pattern, ordered by Index.
type MatchCollection struct {
	matches []Match
}

// Matches scans input against pattern and returns every non-overlapping
// run of qualifying pattern columns as a MatchCollection.
func Matches[E comparable](input, pattern []E, opts Options[E]) MatchCollection {
	return MatchCollection{matches: scanMatches(input, pattern, opts)}
}

// Len returns the number of matches in the collection.
func (c MatchCollection) Len() int { return len(c.matches) }

// At returns the match at index i, or ErrOutOfRange if i is outside
// [0, Len()).
func (c MatchCollection) At(i int) (Match, error) {
	if i < 0 || i >= len(c.matches) {
		return Match{}, ErrOutOfRange
	}
	return c.matches[i], nil
}

// CopyTo copies the collection's matches into dst starting at index,
// returning ErrInsufficientDestination if dst cannot hold them all.
func (c MatchCollection) CopyTo(dst []Match, index int) error {
	if index < 0 || len(dst)-index < len(c.matches) {
		return ErrInsufficientDestination
	}
	copy(dst[index:], c.matches)
	return nil
}

// All returns the collection's matches as a plain slice. The returned
// slice is owned by the caller.
func (c MatchCollection) All() []Match {
	out := make([]Match, len(c.matches))
	copy(out, c.matches)
	return out
}

// Release exists for API symmetry with the scoped-buffer types
// elsewhere in this package; MatchCollection holds no pooled state of
// its own, since its backing matches are already materialized on the
// heap by the time the collection is constructed.
func (c MatchCollection) Release() {}

// MatchIterator yields a MatchCollection's matches one at a time.
type MatchIterator struct {
	matches []Match
	pos     int
}

// EnumerateMatches scans input against pattern and returns an iterator
// over the resulting matches. Every match is computed before
// EnumerateMatches returns; Next only steps through them, so stopping
// early does not save any scanning work.
func EnumerateMatches[E comparable](input, pattern []E, opts Options[E]) *MatchIterator {
	return &MatchIterator{matches: scanMatches(input, pattern, opts)}
}

// Next returns the next match, or ok == false once the iterator is
// exhausted.
func (it *MatchIterator) Next() (Match, bool) {
	if it.pos >= len(it.matches) {
		return Match{}, false
	}
	m := it.matches[it.pos]
	it.pos++
	return m, true
}

// Release exists for API symmetry; MatchIterator holds no pooled
// state.
func (it *MatchIterator) Release() {}

// Count returns the number of approximate occurrences of input inside
// pattern. There is exactly one Count here — no positional-argument
// overloads to disagree with each other — and it agrees with
// len(Matches(...).All()) by construction.
func Count[E comparable](input, pattern []E, opts Options[E]) int {
	return len(scanMatches(input, pattern, opts))
}
