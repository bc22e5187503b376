package sorting

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/katalvlaran/algoviz/trace"
)

// QuickSort returns a sorted copy of seq using Lomuto partitioning and the
// configured pivot strategy, together with the full trace.
//
// For every range [l, r] with l < r the trace records, in order: the pivot
// strategy and the index it picked, the partition header, every
// "Compare a[j]=x with pivot=p", every swap with a snapshot of the whole
// working array, the final pivot swap and the index the pivot landed on.
// The left subrange is sorted before the right one.
//
// Errors: ErrUnknownPivotStrategy if WithPivotStrategy received a bad name.
//
// Complexity: O(n log n) expected, O(n²) worst case.
func QuickSort[T cmp.Ordered](seq []T, opts ...Option) (*Result[T], error) {
	// 1. Apply options and surface the first invalid one.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Resolve the random source only when it can be used.
	q := &quickSorter[T]{a: slices.Clone(seq), opts: o}
	if q.a == nil {
		q.a = []T{}
	}
	if o.Strategy == PivotRandom {
		q.rng = o.Rand
		if q.rng == nil {
			q.rng = rngFromSeed(o.Seed)
		}
	}

	// 3. Traced run.
	q.sort(0, len(q.a)-1, 0)
	q.steps.Recordf("Sorted array: %s", trace.List(q.a))

	return &Result[T]{Sorted: q.a, Steps: q.steps}, nil
}

// quickSorter holds the working copy, options and trace of one QuickSort call.
type quickSorter[T cmp.Ordered] struct {
	a     []T
	opts  Options
	rng   *rand.Rand
	steps trace.Trace
}

func (q *quickSorter[T]) sort(l, r, depth int) {
	if l >= r {
		return
	}
	pi := q.partition(l, r, depth)
	q.sort(l, pi-1, depth+1)
	q.sort(pi+1, r, depth+1)
}

// choosePivot moves the selected pivot into a[r] and records the choice.
func (q *quickSorter[T]) choosePivot(l, r int, ind string) {
	switch q.opts.Strategy {
	case PivotFirst:
		q.a[l], q.a[r] = q.a[r], q.a[l]
		q.steps.Recordf("%sPivot strategy: first element (index %d)", ind, l)
	case PivotRandom:
		idx := randomIndex(q.rng, l, r)
		q.a[idx], q.a[r] = q.a[r], q.a[idx]
		q.steps.Recordf("%sPivot strategy: random element (index %d)", ind, idx)
	case PivotCustom:
		if q.opts.HasPivotIndex && l <= q.opts.PivotIndex && q.opts.PivotIndex <= r {
			p := q.opts.PivotIndex
			q.a[p], q.a[r] = q.a[r], q.a[p]
			q.steps.Recordf("%sPivot strategy: custom index %d", ind, p)
			return
		}
		// Out of range for this subarray: behave exactly like PivotLast.
		q.steps.Recordf("%sPivot strategy: last element (index %d)", ind, r)
	default:
		q.steps.Recordf("%sPivot strategy: last element (index %d)", ind, r)
	}
}

// partition runs one Lomuto pass over a[l..r] and returns the pivot's index.
func (q *quickSorter[T]) partition(l, r, depth int) int {
	ind := trace.Indent(depth)
	q.choosePivot(l, r, ind)

	pivot := q.a[r]
	pv := trace.Value(pivot)
	q.steps.Recordf("%sPartitioning: %s, pivot=%s", ind, trace.List(q.a[l:r+1]), pv)

	i := l - 1
	for j := l; j < r; j++ {
		q.steps.Recordf("%sCompare a[%d]=%s with pivot=%s", ind, j, trace.Value(q.a[j]), pv)
		if q.a[j] <= pivot {
			i++
			q.a[i], q.a[j] = q.a[j], q.a[i]
			q.steps.Recordf("%sSwap a[%d] and a[%d]: %s", ind, i, j, trace.List(q.a))
		}
	}

	q.a[i+1], q.a[r] = q.a[r], q.a[i+1]
	q.steps.Recordf("%sSwap a[%d] and a[%d]: %s", ind, i+1, r, trace.List(q.a))
	q.steps.Recordf("%sPivot %s placed at index %d", ind, pv, i+1)

	return i + 1
}
