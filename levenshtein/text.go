package levenshtein

import (
	"github.com/sinanm89/fuzzysearch/comparer"
	"github.com/sinanm89/fuzzysearch/edittrace"
)

// TextOptions is the string-convenience counterpart of Options[rune]:
// every Text-suffixed entry point in this package takes a TextOptions
// instead of threading an Options[rune] and a rune-conversion through
// the caller.
type TextOptions struct {
	// Comparer overrides rune equality. Nil means comparer.Ordinal.
	Comparer comparer.StringComparer
	// Costs assigns a weight to each edit kind. The zero value means
	// unit costs.
	Costs edittrace.Costs
	// MaxDistance caps the weighted distance a match may have. Nil
	// means uncapped.
	MaxDistance *int
}

func (o TextOptions) toRuneOptions() Options[rune] {
	cmp := o.Comparer
	if cmp == nil {
		cmp = comparer.Ordinal
	}
	return Options[rune]{
		Equal:       cmp.Equal,
		Costs:       o.Costs,
		MaxDistance: o.MaxDistance,
	}
}

// DistanceText is the string convenience form of Distance.
func DistanceText(input, pattern string, opts TextOptions) int {
	return Distance([]rune(input), []rune(pattern), opts.toRuneOptions())
}

// SubsequenceDistanceText is the string convenience form of SubsequenceDistance.
func SubsequenceDistanceText(input, pattern string, opts TextOptions) int {
	return SubsequenceDistance([]rune(input), []rune(pattern), opts.toRuneOptions())
}

// RatioText is the string convenience form of Ratio.
func RatioText(input, pattern string, opts TextOptions) float64 {
	return Ratio([]rune(input), []rune(pattern), opts.toRuneOptions())
}

// SubsequenceRatioText is the string convenience form of SubsequenceRatio.
func SubsequenceRatioText(input, pattern string, opts TextOptions) float64 {
	return SubsequenceRatio([]rune(input), []rune(pattern), opts.toRuneOptions())
}

// IsMatchText is the string convenience form of IsMatch.
func IsMatchText(input, pattern string, opts TextOptions) bool {
	return IsMatch([]rune(input), []rune(pattern), opts.toRuneOptions())
}

// IsFullMatchText is the string convenience form of IsFullMatch.
func IsFullMatchText(input, pattern string, opts TextOptions) bool {
	return IsFullMatch([]rune(input), []rune(pattern), opts.toRuneOptions())
}
