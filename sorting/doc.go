// Package sorting implements the step-traced comparison sorts used by the
// visualizer: merge sort (with its merge tree), quick sort with a pluggable
// pivot strategy, and selection sort.
//
// What:
//
//   - MergeSort: top-down divide and conquer, stable (ties take the left run).
//     Returns the sorted copy, the trace and a MergeNode tree built with the
//     same merge routine but independently of the traced run.
//   - QuickSort: Lomuto partition around a[r]. The pivot strategy decides which
//     element is swapped into position r first: PivotLast (no swap),
//     PivotFirst, PivotRandom (explicit, seedable *rand.Rand) or PivotCustom
//     (caller index, silently falling back to PivotLast when the index is
//     outside the current range).
//   - SelectionSort: classic minimum-selection with a swap per outer index.
//
// Every engine clones its input first; the caller's slice is never mutated,
// and every index in the trace refers to the private working copy.
//
// Complexity:
//
//   - MergeSort:     Time O(n log n) comparisons, trace O(n log n) lines.
//   - QuickSort:     Time O(n log n) expected, O(n²) worst case.
//   - SelectionSort: Time O(n²), trace O(n²) lines.
//
// Errors:
//
//   - ErrUnknownPivotStrategy: a pivot strategy name outside the catalog.
package sorting
