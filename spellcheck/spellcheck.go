// Package spellcheck implements a spell checker: correcting a single
// token against a known vocabulary before it is looked up in the
// inverted index (the "spell-normalization step").
package spellcheck

import (
	"github.com/sinanm89/fuzzysearch/bktree"
	"github.com/sinanm89/fuzzysearch/comparer"
	"github.com/sinanm89/fuzzysearch/metric"
)

// Checker corrects a single token against a known vocabulary.
type Checker interface {
	// CheckSpelling reports whether token is already a known word and,
	// when it is not, every vocabulary entry within the checker's
	// acceptance radius, ordered ascending by distance.
	CheckSpelling(token string) SpellResult
	// TryFixSpelling returns the closest known word to token, within
	// the checker's configured radius. ok is false when token is
	// already known, or when nothing in the vocabulary qualifies.
	TryFixSpelling(token string) (fixed string, ok bool)
}

// SpellResult is the outcome of checking a single token: whether it is
// already a known word, and — when it is not — the candidate
// corrections accepted within the checker's radius, ascending by
// distance.
type SpellResult struct {
	Correct     bool
	Suggestions []bktree.Match[string, int]
}

// Null never corrects anything; every token is reported as already
// correct. It is the checker a search provider falls back to when
// constructed over an empty vocabulary.
type Null struct{}

// CheckSpelling implements Checker.
func (Null) CheckSpelling(string) SpellResult { return SpellResult{Correct: true} }

// TryFixSpelling implements Checker.
func (Null) TryFixSpelling(token string) (string, bool) { return token, false }

// BKChecker is a Checker backed by a bktree.Tree over the vocabulary,
// using a string metric (a Levenshtein metric over an element comparer
// when built by NewBKChecker) and a caller-chosen acceptance radius.
type BKChecker struct {
	vocab   map[string]bool
	tree    *bktree.Tree[string, int]
	maxDist metric.MaxDistance[string, int]
}

// NewBKChecker indexes vocabulary into a BK-tree under a Levenshtein
// metric built from cmp (nil defaults to comparer.Ordinal, a
// case-sensitive Levenshtein). maxDist is the per-token acceptance
// radius; nil defaults to a 25% ratio of the token's length.
func NewBKChecker(vocabulary []string, cmp comparer.StringComparer, maxDist metric.MaxDistance[string, int]) *BKChecker {
	if cmp == nil {
		cmp = comparer.Ordinal
	}
	return NewBKCheckerWithMetric(vocabulary, metric.NewLevenshtein(cmp), maxDist)
}

// NewBKCheckerWithMetric is NewBKChecker generalized to an arbitrary
// caller-supplied string metric, for callers (such as the search
// provider) that accept their own distance metric rather than a bare
// comparer. m must be non-nil.
func NewBKCheckerWithMetric(vocabulary []string, m metric.Metric[string, int], maxDist metric.MaxDistance[string, int]) *BKChecker {
	if maxDist == nil {
		maxDist = metric.NewRatioMax(0.25)
	}

	tree, _ := bktree.New[string, int](m) // a non-nil metric, as documented

	vocab := make(map[string]bool, len(vocabulary))
	for _, w := range vocabulary {
		tree.Insert(w)
		vocab[w] = true
	}
	return &BKChecker{vocab: vocab, tree: tree, maxDist: maxDist}
}

// CheckSpelling implements Checker.
func (c *BKChecker) CheckSpelling(token string) SpellResult {
	if c.vocab[token] {
		return SpellResult{Correct: true}
	}
	return SpellResult{Suggestions: c.tree.FindAll(token, c.maxDist.Max(token))}
}

// TryFixSpelling implements Checker.
func (c *BKChecker) TryFixSpelling(token string) (string, bool) {
	if c.vocab[token] {
		return token, false
	}
	m, ok := c.tree.Find(token)
	if !ok {
		return token, false
	}
	if m.Distance > c.maxDist.Max(token) {
		return token, false
	}
	return m.Value, true
}
