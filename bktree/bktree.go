// Package bktree implements a Burkhard-Keller tree: a space-partitioning
// index over any metric space that prunes candidates with the triangle
// inequality instead of scanning every stored value. It generalizes the
// string-only, Levenshtein-only tree in sinanm89-ditong's
// internal/similarity/bktree.go to an arbitrary metric.Metric[V, D].
package bktree

import (
	"container/list"
	"sort"

	"github.com/sinanm89/fuzzysearch/metric"
)

// node is one entry in the tree: a stored value plus its children
// keyed by their distance from this node.
type node[V any, D metric.Number] struct {
	value    V
	children map[D]*node[V, D]
}

// Tree is a BK-tree over a metric space.
type Tree[V any, D metric.Number] struct {
	space metric.Metric[V, D]
	root  *node[V, D]
	size  int
}

// New builds an empty tree over the given metric.
func New[V any, D metric.Number](space metric.Metric[V, D]) (*Tree[V, D], error) {
	if space == nil {
		return nil, metric.ErrNilMetric
	}
	return &Tree[V, D]{space: space}, nil
}

// Match pairs a stored value with its distance from a query.
type Match[V any, D metric.Number] struct {
	Value    V
	Distance D
}

// Size returns the number of distinct values in the tree.
func (t *Tree[V, D]) Size() int { return t.size }

// Insert adds v to the tree. Values already present (Equal(v, existing)
// holds) are no-ops.
func (t *Tree[V, D]) Insert(v V) {
	if t.root == nil {
		t.root = &node[V, D]{value: v, children: make(map[D]*node[V, D])}
		t.size++
		return
	}

	cur := t.root
	for {
		if t.space.Equal(v, cur.value) {
			return
		}
		d := t.space.Distance(v, cur.value)
		child, ok := cur.children[d]
		if !ok {
			cur.children[d] = &node[V, D]{value: v, children: make(map[D]*node[V, D])}
			t.size++
			return
		}
		cur = child
	}
}

// Contains reports whether v (or a value Equal to it) is in the tree.
func (t *Tree[V, D]) Contains(v V) bool {
	_, ok := t.locate(v)
	return ok
}

func (t *Tree[V, D]) locate(v V) (*node[V, D], bool) {
	cur := t.root
	for cur != nil {
		if t.space.Equal(v, cur.value) {
			return cur, true
		}
		d := t.space.Distance(v, cur.value)
		cur = cur.children[d]
	}
	return nil, false
}

// Find returns the single closest stored value to query, using the
// running best distance to shrink the search radius as it descends
// (nearest-match search with triangle-inequality pruning).
func (t *Tree[V, D]) Find(query V) (Match[V, D], bool) {
	if t.root == nil {
		var zero Match[V, D]
		return zero, false
	}

	best := Match[V, D]{Value: t.root.value, Distance: t.space.Distance(query, t.root.value)}
	stack := []*node[V, D]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := t.space.Distance(query, n.value)
		if d < best.Distance {
			best = Match[V, D]{Value: n.value, Distance: d}
		}

		lo, hi := d-best.Distance, d+best.Distance
		for cd, child := range n.children {
			if cd >= lo && cd <= hi {
				stack = append(stack, child)
			}
		}
	}
	return best, true
}

// FindAll returns every stored value within radius of query, ordered
// ascending by distance (ties broken arbitrarily), using an explicit
// stack rather than recursion to walk the pruned subtrees.
func (t *Tree[V, D]) FindAll(query V, radius D) []Match[V, D] {
	if t.root == nil {
		return nil
	}

	var results []Match[V, D]
	stack := []*node[V, D]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := t.space.Distance(query, n.value)
		if d <= radius {
			results = append(results, Match[V, D]{Value: n.value, Distance: d})
		}

		lo, hi := d-radius, d+radius
		for cd, child := range n.children {
			if cd >= lo && cd <= hi {
				stack = append(stack, child)
			}
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	return results
}

// KNearest returns up to k stored values within maxRadius of query,
// ordered ascending by distance. Accepted candidates are kept in an
// ordered list capped at k entries; once the list is full, its worst
// entry becomes the new pruning radius, so later subtrees are searched
// against a bound that only ever tightens.
func (t *Tree[V, D]) KNearest(query V, k int, maxRadius D) []Match[V, D] {
	if t.root == nil || k <= 0 {
		return nil
	}

	accepted := list.New()
	bound := maxRadius

	accept := func(m Match[V, D]) {
		inserted := false
		for e := accepted.Front(); e != nil; e = e.Next() {
			if m.Distance <= e.Value.(Match[V, D]).Distance {
				accepted.InsertBefore(m, e)
				inserted = true
				break
			}
		}
		if !inserted {
			accepted.PushBack(m)
		}
		if accepted.Len() > k {
			accepted.Remove(accepted.Back())
		}
		if accepted.Len() == k {
			bound = accepted.Back().Value.(Match[V, D]).Distance
		}
	}

	stack := []*node[V, D]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := t.space.Distance(query, n.value)
		if d <= bound {
			accept(Match[V, D]{Value: n.value, Distance: d})
		}

		lo, hi := d-bound, d+bound
		for cd, child := range n.children {
			if cd >= lo && cd <= hi {
				stack = append(stack, child)
			}
		}
	}

	out := make([]Match[V, D], 0, accepted.Len())
	for e := accepted.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(Match[V, D]))
	}
	return out
}

// Remove deletes v from the tree, reporting whether it was present.
// Because a child's position depends on its distance from its parent,
// removing an interior node would strand its subtree; instead the
// subtree's values are collected and re-inserted starting from the
// removed node's parent, which redistributes them to valid positions.
// Removing the root re-inserts every remaining value into a new tree.
func (t *Tree[V, D]) Remove(v V) bool {
	if t.root == nil {
		return false
	}

	if t.space.Equal(v, t.root.value) {
		orphans := collect(t.root.children)
		t.root = nil
		t.size = 0
		for _, o := range orphans {
			t.Insert(o)
		}
		return true
	}

	parent := t.root
	for {
		d := t.space.Distance(v, parent.value)
		child, ok := parent.children[d]
		if !ok {
			return false
		}
		if t.space.Equal(v, child.value) {
			orphans := collect(child.children)
			delete(parent.children, d)
			t.size -= 1 + len(orphans)
			for _, o := range orphans {
				cur := parent
				for {
					od := t.space.Distance(o, cur.value)
					next, ok := cur.children[od]
					if !ok {
						cur.children[od] = &node[V, D]{value: o, children: make(map[D]*node[V, D])}
						t.size++
						break
					}
					cur = next
				}
			}
			return true
		}
		parent = child
	}
}

func collect[V any, D metric.Number](children map[D]*node[V, D]) []V {
	var out []V
	for _, c := range children {
		out = append(out, c.value)
		out = append(out, collect(c.children)...)
	}
	return out
}

// Walk visits every value in the tree in pre-order: a node first, then
// each of its sub-trees in ascending order of the child-distance keys
// that reach them. The order is deterministic across calls and runs,
// independent of Go's randomized map iteration.
func (t *Tree[V, D]) Walk(fn func(V)) {
	if t.root == nil {
		return
	}
	walkNode(t.root, fn)
}

func walkNode[V any, D metric.Number](n *node[V, D], fn func(V)) {
	fn(n.value)
	keys := make([]D, 0, len(n.children))
	for cd := range n.children {
		keys = append(keys, cd)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, cd := range keys {
		walkNode(n.children[cd], fn)
	}
}
