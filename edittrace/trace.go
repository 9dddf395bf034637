// Package edittrace defines the edit-trace record produced by the
// Levenshtein engine's dynamic-programming kernel: the number of
// deletions, insertions, and substitutions that transform an input
// sequence into a pattern (or a slice of it).
package edittrace

// Costs assigns a weight to each kind of edit. The zero value is not a
// valid Costs; use DefaultCosts or Costs{1, 1, 1}.
type Costs struct {
	Delete     int
	Insert     int
	Substitute int
}

// DefaultCosts returns the unit-cost assignment (every edit costs 1).
func DefaultCosts() Costs {
	return Costs{Delete: 1, Insert: 1, Substitute: 1}
}

// Trace carries the non-negative edit counts that produced a
// dynamic-programming cell, plus whether the cell qualifies as a match
// against a caller-supplied cap.
type Trace struct {
	Deletions     int
	Insertions    int
	Substitutions int
	Success       bool
}

// Total returns the unweighted edit count d+i+s.
func (t Trace) Total() int {
	return t.Deletions + t.Insertions + t.Substitutions
}

// Weighted returns the cost-weighted distance d*cD + i*cI + s*cS.
func (t Trace) Weighted(c Costs) int {
	return t.Deletions*c.Delete + t.Insertions*c.Insert + t.Substitutions*c.Substitute
}
