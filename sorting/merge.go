package sorting

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/algoviz/trace"
)

// MergeSort returns a sorted copy of seq together with the full trace and the
// merge tree of the original order.
//
// Trace order per internal node [l, r]:
//  1. "Dividing range [l, r]: ..." before recursing.
//  2. Left subtree, then right subtree.
//  3. "Merging: <left> and <right>".
//  4. Every "Compare a and b" and every "Insert v at position k".
//  5. "After merge: <merged range>".
//
// A final "Sorted array: ..." line closes the trace.
//
// Complexity: O(n log n) time, O(n) extra space for the runs, plus the trace.
func MergeSort[T cmp.Ordered](seq []T) *MergeResult[T] {
	// 1. Work on a private copy; trace indices refer to it.
	s := &mergeSorter[T]{a: slices.Clone(seq)}
	if s.a == nil {
		s.a = []T{}
	}

	// 2. Traced run over the full range.
	s.sort(0, len(s.a)-1, 0)
	s.steps.Recordf("Sorted array: %s", trace.List(s.a))

	// 3. Tree over the caller's original order, built independently.
	return &MergeResult[T]{
		Sorted: s.a,
		Steps:  s.steps,
		Tree:   BuildMergeTree(seq),
	}
}

// mergeSorter holds the working copy and trace of one MergeSort call.
type mergeSorter[T cmp.Ordered] struct {
	a     []T
	steps trace.Trace
}

func (s *mergeSorter[T]) sort(l, r, depth int) {
	if l >= r {
		return
	}
	ind := trace.Indent(depth)
	m := l + (r-l)/2

	s.steps.Recordf("%sDividing range [%d, %d]: %s", ind, l, r, trace.List(s.a[l:r+1]))
	s.sort(l, m, depth+1)
	s.sort(m+1, r, depth+1)

	// Runs are copied out so the merge can overwrite a[l..r] in place.
	left := slices.Clone(s.a[l : m+1])
	right := slices.Clone(s.a[m+1 : r+1])
	s.steps.Recordf("%sMerging: %s and %s", ind, trace.List(left), trace.List(right))

	mergeInto(s.a[l:r+1], left, right,
		func(x, y T) {
			s.steps.Recordf("%sCompare %s and %s", ind, trace.Value(x), trace.Value(y))
		},
		func(v T, k int) {
			s.steps.Recordf("%sInsert %s at position %d", ind, trace.Value(v), l+k)
		},
	)

	s.steps.Recordf("%sAfter merge: %s", ind, trace.List(s.a[l:r+1]))
}

// mergeInto merges the sorted runs left and right into dst, which must have
// length len(left)+len(right). Ties take from left, which keeps the sort
// stable. onCompare and onPlace observe the merge and may be nil; k passed to
// onPlace is the offset inside dst.
func mergeInto[T cmp.Ordered](dst, left, right []T, onCompare func(x, y T), onPlace func(v T, k int)) {
	i, j, k := 0, 0, 0
	place := func(v T) {
		dst[k] = v
		if onPlace != nil {
			onPlace(v, k)
		}
		k++
	}

	for i < len(left) && j < len(right) {
		if onCompare != nil {
			onCompare(left[i], right[j])
		}
		if left[i] <= right[j] {
			place(left[i])
			i++
		} else {
			place(right[j])
			j++
		}
	}
	for ; i < len(left); i++ {
		place(left[i])
	}
	for ; j < len(right); j++ {
		place(right[j])
	}
}

// BuildMergeTree builds the merge-sort recursion tree of seq.
// Each node records its inclusive range and its pre-merge contents; internal
// nodes also record the merge of their children's sorted contents.
// Returns nil for an empty sequence. seq is not modified.
func BuildMergeTree[T cmp.Ordered](seq []T) *MergeNode[T] {
	if len(seq) == 0 {
		return nil
	}

	return buildNode(seq, 0, len(seq)-1)
}

func buildNode[T cmp.Ordered](a []T, l, r int) *MergeNode[T] {
	node := &MergeNode[T]{
		Range: [2]int{l, r},
		Array: slices.Clone(a[l : r+1]),
	}
	if l == r {
		return node
	}

	m := l + (r-l)/2
	node.Left = buildNode(a, l, m)
	node.Right = buildNode(a, m+1, r)

	left, right := node.Left.sorted(), node.Right.sorted()
	node.Merged = make([]T, len(left)+len(right))
	mergeInto(node.Merged, left, right, nil, nil)

	return node
}

// sorted returns the node's contents after merging: Merged for internal
// nodes, Array for leaves.
func (n *MergeNode[T]) sorted() []T {
	if n.Merged != nil {
		return n.Merged
	}

	return n.Array
}
