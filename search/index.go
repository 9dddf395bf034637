package search

import (
	"sort"

	"github.com/sinanm89/fuzzysearch/comparer"
	"github.com/sinanm89/fuzzysearch/internal/normalize"
	"github.com/sinanm89/fuzzysearch/metric"
	"github.com/sinanm89/fuzzysearch/spellcheck"
	"github.com/sinanm89/fuzzysearch/tokenizer"
)

// Config configures New. NameSelector is required; every other field
// has a documented default.
type Config[T comparable] struct {
	// NameSelector extracts the searchable name from an item. Required.
	NameSelector func(item T) string
	// DistanceMetric is the token metric the spell checker is built
	// over. Nil defaults to case-sensitive Levenshtein (comparer.Ordinal).
	DistanceMetric metric.Metric[string, int]
	// Tokenizer splits names and queries into tokens. Nil defaults to
	// tokenizer.Default.
	Tokenizer tokenizer.Tokenizer
	// NameComparer decides whether a candidate's name equals the query
	// for primary-result purposes. Nil defaults to comparer.Ordinal.
	NameComparer comparer.StringComparer
	// Workers bounds the worker pool used to tokenize items at
	// construction; <= 1 tokenizes sequentially regardless of item
	// count.
	Workers int
	// FoldDiacritics, when true, folds accented Latin characters to
	// their ASCII equivalent (internal/normalize) before tokenizing
	// both item names and queries, so "café" and "cafe" tokenize
	// identically.
	FoldDiacritics bool
}

// Index is the concrete Provider built by New/Create: an inverted
// index of tokenized item names plus a BK-tree-backed spell checker.
type Index[T comparable] struct {
	buckets map[string][]T
	nameOf  func(T) string
	nameCmp comparer.StringComparer
	tok     tokenizer.Tokenizer
	checker spellcheck.Checker
	fold    func(string) string
}

// New builds an Index over items per cfg.
func New[T comparable](items []T, cfg Config[T]) (*Index[T], error) {
	if cfg.NameSelector == nil {
		return nil, ErrNilNameSelector
	}

	tok := cfg.Tokenizer
	if tok == nil {
		tok = tokenizer.Default
	}
	nameCmp := cfg.NameComparer
	if nameCmp == nil {
		nameCmp = comparer.Ordinal
	}
	distMetric := cfg.DistanceMetric
	if distMetric == nil {
		distMetric = metric.NewLevenshtein(comparer.Ordinal)
	}

	fold := func(s string) string { return s }
	nameOf := cfg.NameSelector
	if cfg.FoldDiacritics {
		fold = normalize.Fold
		nameOf = func(item T) string { return normalize.Fold(cfg.NameSelector(item)) }
	}

	buckets, vocab := buildBuckets(items, nameOf, tok, cfg.Workers)

	var checker spellcheck.Checker = spellcheck.Null{}
	if len(vocab) > 0 {
		checker = spellcheck.NewBKCheckerWithMetric(vocab, distMetric, metric.NewRatioMax(0.25))
	}

	return &Index[T]{
		buckets: buckets,
		nameOf:  nameOf,
		nameCmp: nameCmp,
		tok:     tok,
		checker: checker,
		fold:    fold,
	}, nil
}

// Create is a positional-argument constructor:
// Create(items, nameSelector, distanceMetric?, tokenizer?).
func Create[T comparable](items []T, nameSelector func(T) string, distanceMetric metric.Metric[string, int], tok tokenizer.Tokenizer) (*Index[T], error) {
	return New(items, Config[T]{
		NameSelector:   nameSelector,
		DistanceMetric: distanceMetric,
		Tokenizer:      tok,
	})
}

type scoredItem[T comparable] struct {
	item T
	rank float64
}

// Search implements Provider.
func (idx *Index[T]) Search(query string, opts Options) Result[T] {
	return idx.run(query, opts)
}

// SearchLast implements Provider. It is semantically identical to
// Search for the inverted-index provider: there is no notion of a
// "last" bucket scan distinct from the first, since every candidate's
// rank is computed from the complete hit count up front.
func (idx *Index[T]) SearchLast(query string, opts Options) Result[T] {
	return idx.run(query, opts)
}

func (idx *Index[T]) run(query string, opts Options) Result[T] {
	query = idx.fold(query)
	tokens := idx.tok.Tokenize(query)
	total := len(tokens)
	if total == 0 {
		return Result[T]{}
	}

	hits := make(map[T]int)
	var order []T
	seen := make(map[T]bool)

	for _, tkn := range tokens {
		lookup := tkn
		if res := idx.checker.CheckSpelling(tkn); !res.Correct {
			if fixed, ok := idx.checker.TryFixSpelling(tkn); ok {
				lookup = fixed
			}
		}
		for _, item := range idx.buckets[lookup] {
			hits[item]++
			if !seen[item] {
				seen[item] = true
				order = append(order, item)
			}
		}
	}

	scored := make([]scoredItem[T], len(order))
	for i, item := range order {
		scored[i] = scoredItem[T]{item: item, rank: 1 - float64(hits[item])/float64(total)}
	}

	tiebreak := relativeLengthTiebreak(query)
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].rank != scored[j].rank {
			return scored[i].rank < scored[j].rank
		}
		return tiebreak(idx.nameOf(scored[i].item), idx.nameOf(scored[j].item)) < 0
	})

	var result Result[T]
	count := 0
	for _, s := range scored {
		if !result.Success && s.rank == 0 && idx.nameCmp.EqualString(idx.nameOf(s.item), query) {
			result.Success = true
			result.Value = s.item
			continue
		}
		if opts.MaxSuggestions == 0 {
			continue
		}
		if opts.MaxSuggestions > 0 && count >= opts.MaxSuggestions {
			continue
		}
		result.Suggestions = append(result.Suggestions, Suggestion[T]{Item: s.item, Rank: s.rank})
		count++
	}
	return result
}
