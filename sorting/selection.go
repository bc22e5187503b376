package sorting

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/algoviz/trace"
)

// SelectionSort returns a sorted copy of seq with a trace of every outer
// step, inner comparison, minimum update and swap.
//
// Complexity: O(n²) time and trace lines, O(n) extra space.
func SelectionSort[T cmp.Ordered](seq []T) *Result[T] {
	a := slices.Clone(seq)
	if a == nil {
		a = []T{}
	}
	var steps trace.Trace

	n := len(a)
	for i := 0; i < n; i++ {
		minIdx := i
		steps.Recordf("Step %d: Start from index %d, current array: %s", i+1, i, trace.List(a))
		for j := i + 1; j < n; j++ {
			steps.Recordf("  Compare arr[%d]=%s with current min arr[%d]=%s",
				j, trace.Value(a[j]), minIdx, trace.Value(a[minIdx]))
			if a[j] < a[minIdx] {
				minIdx = j
				steps.Recordf("  New min found at index %d: %s", minIdx, trace.Value(a[minIdx]))
			}
		}
		a[i], a[minIdx] = a[minIdx], a[i]
		steps.Recordf("  Swap arr[%d] and arr[%d]: %s", i, minIdx, trace.List(a))
	}
	steps.Recordf("Sorted array: %s", trace.List(a))

	return &Result[T]{Sorted: a, Steps: steps}
}
