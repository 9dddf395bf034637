// Package search implements a search provider: an inverted index over
// tokenized item names, spell-normalized queries, and deterministic
// rank-ordered suggestions.
package search

import "errors"

// ErrNilNameSelector is returned by New/Create when no name selector
// function is supplied; a provider cannot tokenize items it cannot
// name.
var ErrNilNameSelector = errors.New("search: name selector is required")

// Options configures a single Search/SearchLast call.
type Options struct {
	// MaxSuggestions caps the suggestion list: 0 emits none (the
	// default), -1 means no cap, n > 0 means at most n.
	MaxSuggestions int
}

// Suggestion pairs a candidate item with its rank (0 is a perfect
// match, 1 a complete mismatch).
type Suggestion[T any] struct {
	Item T
	Rank float64
}

// Result is the outcome of a search: Value is populated iff Success.
type Result[T any] struct {
	Success     bool
	Value       T
	Suggestions []Suggestion[T]
}

// Provider is the search-provider capability: deterministic,
// rank-ordered lookup over a fixed set of items built at construction.
//
// T is constrained to comparable so the provider can count per-item
// token hits in a plain map; an inverted index already requires set
// semantics per bucket, which presupposes item identity.
type Provider[T comparable] interface {
	Search(query string, opts Options) Result[T]
	SearchLast(query string, opts Options) Result[T]
}
