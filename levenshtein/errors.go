package levenshtein

import "errors"

// ErrOutOfRange is returned by MatchCollection indexed access past the
// end of the collection.
var ErrOutOfRange = errors.New("levenshtein: index out of range")

// ErrInsufficientDestination is returned by MatchCollection.CopyTo when
// the destination slice cannot fit the remaining elements.
var ErrInsufficientDestination = errors.New("levenshtein: destination slice too small")

// ErrReadOnly exists for API symmetry: MatchCollection is read-only by
// construction and exposes no mutator, so no code path in this package
// returns it. It is kept as an exported sentinel for callers that
// type-switch on error kinds and want a stable identity to assert
// against.
var ErrReadOnly = errors.New("levenshtein: match collection is read-only")
