package metric

import (
	"github.com/sinanm89/fuzzysearch/comparer"
	"github.com/sinanm89/fuzzysearch/edittrace"
	"github.com/sinanm89/fuzzysearch/levenshtein"
)

// RatioMax is a text-specific max-distance metric:
// Max(source) = len(source) * Ratio, with Ratio clamped to [0, 1].
type RatioMax struct {
	Ratio float64
}

// NewRatioMax constructs a RatioMax, clamping ratio into [0, 1].
func NewRatioMax(ratio float64) RatioMax {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return RatioMax{Ratio: ratio}
}

// Max implements MaxDistance[string, int].
func (r RatioMax) Max(source string) int {
	return int(float64(len([]rune(source))) * r.Ratio)
}

// Levenshtein is a Metric[string, int] backed by the Levenshtein
// engine's full-match Distance, parameterized by an element comparer
// and unit costs. It is the default metric the search provider builds
// its spell checker on.
type Levenshtein struct {
	Comparer comparer.StringComparer
	Costs    edittrace.Costs
}

// NewLevenshtein builds a Levenshtein metric with the given comparer.
// A nil comparer defaults to comparer.Ordinal.
func NewLevenshtein(cmp comparer.StringComparer) Levenshtein {
	if cmp == nil {
		cmp = comparer.Ordinal
	}
	return Levenshtein{Comparer: cmp, Costs: edittrace.DefaultCosts()}
}

// Distance implements Metric[string, int].
func (m Levenshtein) Distance(a, b string) int {
	return levenshtein.DistanceText(a, b, levenshtein.TextOptions{
		Comparer: m.Comparer,
		Costs:    m.Costs,
	})
}

// Equal implements Metric[string, int].
func (m Levenshtein) Equal(a, b string) bool {
	if m.Comparer != nil {
		return m.Comparer.EqualString(a, b)
	}
	return a == b
}
