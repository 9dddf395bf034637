package levenshtein

import (
	"github.com/sinanm89/fuzzysearch/edittrace"
	"github.com/sinanm89/fuzzysearch/internal/bufpool"
)

// distanceKernel computes a scalar weighted distance between a and b
// using two rolling int rows.
//
// When subsequence is false (full-match mode) and len(a) < len(b), the
// kernel swaps the operands and the delete/insert costs together —
// this keeps the shorter sequence along the row axis for cache
// locality without changing the returned distance, since swapping a
// deletion-cost input for an insertion-cost input (and vice versa)
// while swapping which sequence plays which role is a no-op on the
// scalar result. It is not applied in subsequence mode, where a and b
// play asymmetric roles (only b's sub-slices are candidates).
func distanceKernel[E comparable](a, b []E, eq func(x, y E) bool, costs edittrace.Costs, subsequence bool, row *bufpool.IntRow) int {
	cD, cI := costs.Delete, costs.Insert
	if !subsequence && len(a) < len(b) {
		a, b = b, a
		cD, cI = cI, cD
	}

	n, m := len(a), len(b)
	rowLen := m + 1
	buf := row.Acquire(2 * rowLen)
	row0 := buf[:rowLen]
	row1 := buf[rowLen:]

	for j := 0; j <= m; j++ {
		if subsequence {
			row0[j] = 0
		} else {
			row0[j] = j * cI
		}
	}

	for i := 0; i < n; i++ {
		row1[0] = row0[0] + cD
		for j := 0; j < m; j++ {
			cost := 0
			if !eq(a[i], b[j]) {
				cost = costs.Substitute
			}
			del := row0[j+1] + cD
			ins := row1[j] + cI
			sub := row0[j] + cost

			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			row1[j+1] = best
		}
		row0, row1 = row1, row0
	}

	if subsequence {
		best := row0[0]
		for _, v := range row0[1:] {
			if v < best {
				best = v
			}
		}
		return best
	}
	return row0[m]
}

// traceKernel computes the final row of edit traces between input and
// pattern using two rolling rows of edittrace.Trace. The returned slice
// is the row owned by buf; callers must not use it past buf.Release().
//
// Unlike distanceKernel, traceKernel never swaps operands: the column
// index of the returned row must stay aligned with positions inside
// pattern, since Match.Index is defined relative to pattern.
func traceKernel[E comparable](input, pattern []E, eq func(x, y E) bool, costs edittrace.Costs, subsequence bool, buf *bufpool.TraceRow) []edittrace.Trace {
	n, m := len(input), len(pattern)
	rowLen := m + 1
	row := buf.Acquire(2 * rowLen)
	row0 := row[:rowLen]
	row1 := row[rowLen:]

	for j := 0; j <= m; j++ {
		if subsequence {
			row0[j] = edittrace.Trace{}
		} else {
			row0[j] = edittrace.Trace{Insertions: j}
		}
	}

	for i := 0; i < n; i++ {
		row1[0] = withDeletion(row0[0])
		for j := 0; j < m; j++ {
			matched := eq(input[i], pattern[j])

			del := withDeletion(row0[j+1])
			ins := withInsertion(row1[j])
			sub := withSubstitution(row0[j], matched)

			best, bestW := del, del.Weighted(costs)
			if w := ins.Weighted(costs); w < bestW {
				best, bestW = ins, w
			}
			if w := sub.Weighted(costs); w < bestW {
				best, bestW = sub, w
			}
			row1[j+1] = best
		}
		row0, row1 = row1, row0
	}

	return row0
}

func withDeletion(t edittrace.Trace) edittrace.Trace {
	t.Deletions++
	return t
}

func withInsertion(t edittrace.Trace) edittrace.Trace {
	t.Insertions++
	return t
}

func withSubstitution(t edittrace.Trace, matched bool) edittrace.Trace {
	if !matched {
		t.Substitutions++
	}
	return t
}
