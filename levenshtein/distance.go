package levenshtein

import (
	"github.com/sinanm89/fuzzysearch/internal/bufpool"
	"github.com/sinanm89/fuzzysearch/internal/config"
)

// Distance returns the full-match edit distance between input and
// pattern. opts.MaxDistance is ignored; Distance always computes the
// exact value.
func Distance[E comparable](input, pattern []E, opts Options[E]) int {
	var row bufpool.IntRow
	defer row.Release()
	return distanceKernel(input, pattern, opts.equalFn(), opts.costsOrDefault(), false, &row)
}

// SubsequenceDistance returns the minimum full-match distance between
// input and any contiguous sub-slice of pattern.
func SubsequenceDistance[E comparable](input, pattern []E, opts Options[E]) int {
	var row bufpool.IntRow
	defer row.Release()
	return distanceKernel(input, pattern, opts.equalFn(), opts.costsOrDefault(), true, &row)
}

// normalize is the safe-division helper behind Ratio/SubsequenceRatio:
// normalize(d, 0) is 0 when d is also 0 (both sequences empty, a
// perfect match) and 1 otherwise, keeping Ratio(a, a) == 1 for all a.
func normalize(d, length int) float64 {
	if length == 0 {
		if d == 0 {
			return 0
		}
		return 1
	}
	return float64(d) / float64(length)
}

func clamp01(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func maxLen(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Ratio returns 1 - normalize(Distance(input, pattern), max(|input|, |pattern|)),
// clamped to [0, 1]. Ratio(a, a) == 1 for every a.
func Ratio[E comparable](input, pattern []E, opts Options[E]) float64 {
	d := Distance(input, pattern, opts)
	return clamp01(1 - normalize(d, maxLen(len(input), len(pattern))))
}

// SubsequenceRatio returns 1 - normalize(SubsequenceDistance(input, pattern), |input|),
// clamped to [0, 1].
func SubsequenceRatio[E comparable](input, pattern []E, opts Options[E]) float64 {
	d := SubsequenceDistance(input, pattern, opts)
	return clamp01(1 - normalize(d, len(input)))
}

// defaultMaxDistance is IsMatch's cap when opts.MaxDistance is nil:
// floor(config.DefaultMatchRatio() * |input|), 0.25 unless overlaid by
// fuzzysearch.toml.
func defaultMaxDistance(inputLen int) int {
	return int(config.DefaultMatchRatio() * float64(inputLen))
}

// IsMatch reports whether SubsequenceDistance(input, pattern) is at
// most opts.MaxDistance, defaulting to floor(0.25*|input|) when unset.
func IsMatch[E comparable](input, pattern []E, opts Options[E]) bool {
	threshold := defaultMaxDistance(len(input))
	if opts.MaxDistance != nil {
		threshold = *opts.MaxDistance
	}
	return SubsequenceDistance(input, pattern, opts) <= threshold
}

// IsFullMatch reports whether Distance(input, pattern) is at most
// opts.MaxDistance, defaulting to floor(0.25*|input|) when unset.
func IsFullMatch[E comparable](input, pattern []E, opts Options[E]) bool {
	threshold := defaultMaxDistance(len(input))
	if opts.MaxDistance != nil {
		threshold = *opts.MaxDistance
	}
	return Distance(input, pattern, opts) <= threshold
}
