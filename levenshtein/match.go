package levenshtein

import (
	"github.com/sinanm89/fuzzysearch/edittrace"
	"github.com/sinanm89/fuzzysearch/internal/bufpool"
)

// Match is a single occurrence of an input sequence inside a pattern
// sequence. Index and Length are positions inside pattern; Distance is
// the edit trace's weighted cost.
type Match struct {
	Index    int
	Length   int
	Trace    edittrace.Trace
	Distance int
	Success  bool
}

// candidate is one column of a subsequence-mode trace row, reduced to
// the three numbers extraction needs: the pattern column the trace
// ends at, the pattern column the alignment started at, and the
// length of the aligned sub-slice. start and length are both derived
// from the trace alone (length = |input| - deletions + insertions,
// start = column - length) — no separate bookkeeping is threaded
// through the dynamic-programming kernel for them.
type candidate struct {
	column int
	start  int
	length int
	trace  edittrace.Trace
}

// candidatesFromRow builds the candidate list for a subsequence-mode
// trace row, dropping columns whose derived length is zero while the
// input is non-empty.
func candidatesFromRow(row []edittrace.Trace, inputLen int) []candidate {
	out := make([]candidate, 0, len(row))
	for k, tr := range row {
		length := inputLen - tr.Deletions + tr.Insertions
		if length == 0 && inputLen > 0 {
			continue
		}
		out = append(out, candidate{column: k, start: k - length, length: length, trace: tr})
	}
	return out
}

// groupByStart collapses consecutive candidates sharing the same start
// column into a single representative: the one with the strictly
// lowest total edit count. Earlier occurrences of a tied minimum win,
// so a reversed input list yields the mirror choice — the basis for
// LastMatch's different tie-break from FindMatch's.
func groupByStart(cands []candidate) []candidate {
	var out []candidate
	i := 0
	for i < len(cands) {
		best := cands[i]
		j := i + 1
		for j < len(cands) && cands[j].start == best.start {
			if cands[j].trace.Total() < best.trace.Total() {
				best = cands[j]
			}
			j++
		}
		out = append(out, best)
		i = j
	}
	return out
}

func reverseCandidates(c []candidate) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}

// extract turns a subsequence-mode trace row into a deterministic,
// non-overlapping Match sequence, scanning forward unless reverse is
// set. When opts.MaxDistance is nil every group qualifies: one
// candidate per distinct start location, all of them reported.
func extract[E comparable](row []edittrace.Trace, inputLen int, costs edittrace.Costs, opts Options[E], reverse bool) []Match {
	cands := candidatesFromRow(row, inputLen)
	if reverse {
		reverseCandidates(cands)
	}
	grouped := groupByStart(cands)
	if reverse {
		reverseCandidates(grouped)
	}

	matches := make([]Match, 0, len(grouped))
	for _, c := range grouped {
		d := c.trace.Weighted(costs)
		if opts.MaxDistance != nil && d > *opts.MaxDistance {
			continue
		}
		tr := c.trace
		tr.Success = true
		matches = append(matches, Match{
			Index:    c.start,
			Length:   c.length,
			Trace:    tr,
			Distance: d,
			Success:  true,
		})
	}
	return matches
}

// scanMatches is the shared engine behind Matches, EnumerateMatches,
// Count, and (forward-only) FindMatch.
func scanMatches[E comparable](input, pattern []E, opts Options[E]) []Match {
	var buf bufpool.TraceRow
	defer buf.Release()
	costs := opts.costsOrDefault()
	row := traceKernel(input, pattern, opts.equalFn(), costs, true, &buf)
	return extract(row, len(input), costs, opts, false)
}

// FindMatch returns the first (leftmost) approximate occurrence of
// input inside pattern. ok is false when no candidate run qualifies.
func FindMatch[E comparable](input, pattern []E, opts Options[E]) (m Match, ok bool) {
	matches := scanMatches(input, pattern, opts)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// LastMatch returns the last (rightmost) approximate occurrence of
// input inside pattern, scanning the final trace row in reverse:
// ambiguous ties within a run resolve toward the higher-column cell
// instead of FindMatch's lower-column preference.
func LastMatch[E comparable](input, pattern []E, opts Options[E]) (m Match, ok bool) {
	var buf bufpool.TraceRow
	defer buf.Release()
	costs := opts.costsOrDefault()
	row := traceKernel(input, pattern, opts.equalFn(), costs, true, &buf)
	matches := extract(row, len(input), costs, opts, true)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[len(matches)-1], true
}

// FullMatch aligns all of input against all of pattern (full-match
// mode; no scanning for a sub-range) and reads the trace cell at
// column |pattern|. Success is true whenever opts.MaxDistance is nil
// or the resulting weighted distance stays within it.
func FullMatch[E comparable](input, pattern []E, opts Options[E]) Match {
	var buf bufpool.TraceRow
	defer buf.Release()
	costs := opts.costsOrDefault()
	row := traceKernel(input, pattern, opts.equalFn(), costs, false, &buf)
	trace := row[len(pattern)]
	d := trace.Weighted(costs)
	trace.Success = opts.MaxDistance == nil || d <= *opts.MaxDistance
	return Match{
		Index:    0,
		Length:   len(pattern),
		Trace:    trace,
		Distance: d,
		Success:  trace.Success,
	}
}
