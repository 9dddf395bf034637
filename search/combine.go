package search

import "sort"

// combinedProvider implements Provider by querying an ordered list of
// providers and merging their results: the first successful result
// wins, and every provider's suggestions are concatenated and
// re-sorted by rank.
type combinedProvider[T comparable] struct {
	providers []Provider[T]
}

// Combine returns a Provider that queries providers in order.
func Combine[T comparable](providers ...Provider[T]) Provider[T] {
	return &combinedProvider[T]{providers: providers}
}

// Search implements Provider.
func (c *combinedProvider[T]) Search(query string, opts Options) Result[T] {
	return c.run(opts, func(p Provider[T]) Result[T] { return p.Search(query, opts) })
}

// SearchLast implements Provider.
func (c *combinedProvider[T]) SearchLast(query string, opts Options) Result[T] {
	return c.run(opts, func(p Provider[T]) Result[T] { return p.SearchLast(query, opts) })
}

func (c *combinedProvider[T]) run(opts Options, call func(Provider[T]) Result[T]) Result[T] {
	var out Result[T]
	var all []Suggestion[T]

	for _, p := range c.providers {
		r := call(p)
		all = append(all, r.Suggestions...)
		if !out.Success && r.Success {
			out.Success = true
			out.Value = r.Value
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Rank < all[j].Rank })

	switch {
	case opts.MaxSuggestions == 0:
		all = nil
	case opts.MaxSuggestions > 0 && len(all) > opts.MaxSuggestions:
		all = all[:opts.MaxSuggestions]
	}
	out.Suggestions = all
	return out
}
