// Package bufpool implements a scoped buffer: a short-lived borrow of
// a typed scratch region that lives on the caller's stack frame when
// the request is small, and falls back to a
// process-wide sync.Pool otherwise. It backs the Levenshtein engine's
// two rolling dynamic-programming rows so that short inputs never
// touch the heap.
//
// The design is grounded on the sync.Pool-of-[]int idiom used by the
// example pack's duplicatecheck.LevenshteinEngine (intSlicePool /
// getIntSlice / putIntSlice), generalized with a fixed-size array
// fronting the pool for the common small-input case, and specialized
// to the two row shapes the engine actually needs: plain int rows for
// the distance-only kernel, and edittrace.Trace rows for the kernel
// that reconstructs matches.
package bufpool

import (
	"sync"

	"github.com/sinanm89/fuzzysearch/edittrace"
)

// StackBudget is the largest row length served directly from the
// caller-owned array rather than a pooled slice. It is conservative:
// most words and short identifiers fit comfortably within it.
const StackBudget = 256

var intPool = sync.Pool{
	New: func() any {
		s := make([]int, 0, 1024)
		return &s
	},
}

var traceRowPool = sync.Pool{
	New: func() any {
		s := make([]edittrace.Trace, 0, 1024)
		return &s
	},
}

// IntRow is a scoped buffer over a row of int, used by the
// distance-only dynamic-programming kernel.
type IntRow struct {
	small  [StackBudget]int
	large  []int
	pooled bool
	ready  bool
}

// Acquire returns a slice of exactly n ints. Contents are unspecified
// when the row is served from the pool.
func (r *IntRow) Acquire(n int) []int {
	r.releasePooled()
	r.ready = true
	if n <= StackBudget {
		return r.small[:n]
	}
	ptr := intPool.Get().(*[]int)
	s := *ptr
	if cap(s) < n {
		s = make([]int, n)
	} else {
		s = s[:n]
	}
	r.large = s
	r.pooled = true
	return s
}

func (r *IntRow) releasePooled() {
	if r.pooled {
		s := r.large
		intPool.Put(&s)
		r.pooled = false
		r.large = nil
	}
}

// Release returns any pooled backing array. Safe to call more than
// once; only the first call after Acquire has any effect, so a
// double-release cannot corrupt the pool.
func (r *IntRow) Release() {
	if !r.ready {
		return
	}
	r.releasePooled()
	r.ready = false
}

// TraceRow is a scoped buffer over a row of edittrace.Trace, used by
// the trace kernel that reconstructs matches. GetBufferSize(patternLen)
// in the levenshtein package
// reports the equivalent scalar-unit size of two such rows (3 ints
// per Trace cell) for callers that want to preallocate externally.
type TraceRow struct {
	small  [StackBudget]edittrace.Trace
	large  []edittrace.Trace
	pooled bool
	ready  bool
}

// Acquire returns a slice of exactly n Trace cells.
func (r *TraceRow) Acquire(n int) []edittrace.Trace {
	r.releasePooled()
	r.ready = true
	if n <= StackBudget {
		return r.small[:n]
	}
	ptr := traceRowPool.Get().(*[]edittrace.Trace)
	s := *ptr
	if cap(s) < n {
		s = make([]edittrace.Trace, n)
	} else {
		s = s[:n]
	}
	r.large = s
	r.pooled = true
	return s
}

func (r *TraceRow) releasePooled() {
	if r.pooled {
		s := r.large
		traceRowPool.Put(&s)
		r.pooled = false
		r.large = nil
	}
}

// Release returns any pooled backing array. Safe to call more than
// once.
func (r *TraceRow) Release() {
	if !r.ready {
		return
	}
	r.releasePooled()
	r.ready = false
}
