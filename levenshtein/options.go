// Package levenshtein implements a generic Levenshtein engine: edit
// distances, subsequence distances, ratios, and match extraction with
// full edit traces, over arbitrary comparable element sequences. The
// dynamic-programming rows come from internal/bufpool, which serves
// short inputs from a fixed-size array instead of the shared pool; the
// match-extraction functions still allocate their candidate and result
// slices on every call.
//
// Every convenience entry point in this package — Distance, Ratio,
// IsMatch, FindMatch, Matches, EnumerateMatches, Count, and their Text
// counterparts — funnels through one canonical, argument-named Options
// value rather than a chain of positional overloads. Some comparable
// libraries expose two overloads of a Count-like operation that pass
// cost arguments in different positional orders; routing everything
// through Options closes that class of bug by construction (see
// DESIGN.md).
package levenshtein

import (
	"github.com/sinanm89/fuzzysearch/edittrace"
	"github.com/sinanm89/fuzzysearch/internal/config"
)

// Options configures every operation in this package. The zero value
// is valid: nil Equal falls back to Go's built-in == over E, and a
// zero Costs falls back to unit costs.
type Options[E comparable] struct {
	// Equal overrides element equality. Nil means "use ==".
	Equal func(a, b E) bool
	// Costs assigns a weight to each edit kind. The zero value means
	// unit costs (every edit costs 1).
	Costs edittrace.Costs
	// MaxDistance caps the weighted distance a match may have. Nil
	// means uncapped.
	MaxDistance *int
}

func (o Options[E]) equalFn() func(a, b E) bool {
	if o.Equal != nil {
		return o.Equal
	}
	return func(a, b E) bool { return a == b }
}

func (o Options[E]) costsOrDefault() edittrace.Costs {
	if o.Costs == (edittrace.Costs{}) {
		d := config.DefaultCosts()
		return edittrace.Costs{Insert: d.Insert, Delete: d.Delete, Substitute: d.Substitute}
	}
	return o.Costs
}

// WithMaxDistance returns a copy of o with MaxDistance set to max.
func (o Options[E]) WithMaxDistance(max int) Options[E] {
	o.MaxDistance = &max
	return o
}

// WithCosts returns a copy of o with Costs set to c.
func (o Options[E]) WithCosts(c edittrace.Costs) Options[E] {
	o.Costs = c
	return o
}
