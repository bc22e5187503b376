package sorting_test

import (
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/sorting"
)

// randomInts builds a deterministic pseudo-random slice with many duplicates.
func randomInts(r *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(20) - 5
	}

	return out
}

// assertSortedPermutation checks that got is non-decreasing and holds the same
// multiset as in.
func assertSortedPermutation(t *testing.T, in, got []int) {
	t.Helper()
	want := slices.Clone(in)
	slices.Sort(want)
	assert.True(t, slices.IsSorted(got), "not sorted: %v", got)
	assert.Equal(t, want, got)
}

func TestAllEngines_SortedPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 40; n++ {
		in := randomInts(r, n)
		orig := slices.Clone(in)

		ms := sorting.MergeSort(in)
		assertSortedPermutation(t, in, ms.Sorted)

		ss := sorting.SelectionSort(in)
		assertSortedPermutation(t, in, ss.Sorted)

		for _, strat := range []sorting.PivotStrategy{
			sorting.PivotLast, sorting.PivotFirst, sorting.PivotRandom, sorting.PivotCustom,
		} {
			qs, err := sorting.QuickSort(in,
				sorting.WithPivotStrategy(strat),
				sorting.WithPivotIndex(n/2),
				sorting.WithSeed(int64(n)+1),
			)
			require.NoError(t, err)
			assertSortedPermutation(t, in, qs.Sorted)
		}

		// Input is never mutated.
		assert.Equal(t, orig, in)
	}
}

func TestQuickSort_RandomPivotAlwaysSorts(t *testing.T) {
	in := []int{9, 3, 7, 3, 1, 8, 2, 2, 6}
	for seed := int64(1); seed <= 25; seed++ {
		res, err := sorting.QuickSort(in, sorting.WithPivotStrategy(sorting.PivotRandom), sorting.WithSeed(seed))
		require.NoError(t, err)
		assertSortedPermutation(t, in, res.Sorted)
	}
}

func TestQuickSort_RandomPivotDeterministicPerSeed(t *testing.T) {
	in := []float64{5, 1, 4, 2, 3, 9, 0}
	a, err := sorting.QuickSort(in, sorting.WithPivotStrategy(sorting.PivotRandom), sorting.WithSeed(7))
	require.NoError(t, err)
	b, err := sorting.QuickSort(in, sorting.WithPivotStrategy(sorting.PivotRandom),
		sorting.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a.Steps, b.Steps)
}

func TestEngines_Deterministic(t *testing.T) {
	in := []int{4, 4, 1, 3, 9, 0, 2}
	assert.Equal(t, sorting.MergeSort(in).Steps, sorting.MergeSort(in).Steps)
	assert.Equal(t, sorting.SelectionSort(in).Steps, sorting.SelectionSort(in).Steps)
	a, _ := sorting.QuickSort(in)
	b, _ := sorting.QuickSort(in)
	assert.Equal(t, a.Steps, b.Steps)
}

func TestMergeSort_Example(t *testing.T) {
	res := sorting.MergeSort([]int{5, 2, 4, 6, 1, 3})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, res.Sorted)
	assert.NotEmpty(t, res.Steps)
	require.NotNil(t, res.Tree)
	assert.Equal(t, [2]int{0, 5}, res.Tree.Range)
	assert.Equal(t, []int{5, 2, 4, 6, 1, 3}, res.Tree.Array)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, res.Tree.Merged)
	assert.Equal(t, [2]int{0, 2}, res.Tree.Left.Range)
	assert.Equal(t, []int{2, 4, 5}, res.Tree.Left.Merged)
	assert.Equal(t, [2]int{3, 5}, res.Tree.Right.Range)
	assert.Equal(t, []int{1, 3, 6}, res.Tree.Right.Merged)
}

func TestMergeSort_ExactTrace(t *testing.T) {
	res := sorting.MergeSort([]int{2, 1})
	assert.Equal(t, []string{
		"Dividing range [0, 1]: [2, 1]",
		"Merging: [2] and [1]",
		"Compare 2 and 1",
		"Insert 1 at position 0",
		"Insert 2 at position 1",
		"After merge: [1, 2]",
		"Sorted array: [1, 2]",
	}, res.Steps.Strings())
}

func TestMergeSort_EqualKeysTakeLeftFirst(t *testing.T) {
	res := sorting.MergeSort([]int{2, 2})
	assert.Equal(t, []string{
		"Dividing range [0, 1]: [2, 2]",
		"Merging: [2] and [2]",
		"Compare 2 and 2",
		"Insert 2 at position 0",
		"Insert 2 at position 1",
		"After merge: [2, 2]",
		"Sorted array: [2, 2]",
	}, res.Steps.Strings())
}

func TestMergeSort_IsStable(t *testing.T) {
	// +0 and -0 compare equal but stay distinguishable by sign.
	res := sorting.MergeSort([]float64{0, math.Copysign(0, -1)})
	require.Len(t, res.Sorted, 2)
	assert.False(t, math.Signbit(res.Sorted[0]))
	assert.True(t, math.Signbit(res.Sorted[1]))

	res = sorting.MergeSort([]float64{math.Copysign(0, -1), 0})
	assert.True(t, math.Signbit(res.Sorted[0]))
	assert.False(t, math.Signbit(res.Sorted[1]))
}

func TestMergeSort_NestedTraceIsIndented(t *testing.T) {
	res := sorting.MergeSort([]int{3, 2, 1})
	steps := res.Steps.Strings()
	assert.Equal(t, "Dividing range [0, 2]: [3, 2, 1]", steps[0])
	assert.Equal(t, "  Dividing range [0, 1]: [3, 2]", steps[1])
	assert.Contains(t, steps, "Insert 1 at position 0")
}

func TestMergeSort_EmptyAndSingle(t *testing.T) {
	empty := sorting.MergeSort([]int{})
	assert.Empty(t, empty.Sorted)
	assert.Nil(t, empty.Tree)
	assert.Equal(t, []string{"Sorted array: []"}, empty.Steps.Strings())

	one := sorting.MergeSort([]string{"x"})
	assert.Equal(t, []string{"x"}, one.Sorted)
	require.NotNil(t, one.Tree)
	assert.Nil(t, one.Tree.Left)
	assert.Nil(t, one.Tree.Merged)
}

func TestMergeTree_LeavesCoverEveryIndex(t *testing.T) {
	in := []int{7, 3, 9, 1, 5}
	tree := sorting.BuildMergeTree(in)

	var leaves []int
	var walk func(n *sorting.MergeNode[int])
	walk = func(n *sorting.MergeNode[int]) {
		if n.Left == nil {
			assert.Equal(t, n.Range[0], n.Range[1])
			leaves = append(leaves, n.Range[0])
			return
		}
		assert.Equal(t, n.Left.Range[0], n.Range[0])
		assert.Equal(t, n.Right.Range[1], n.Range[1])
		assert.True(t, slices.IsSorted(n.Merged))
		walk(n.Left)
		walk(n.Right)
	}
	walk(tree)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, leaves)
}

func TestQuickSort_ExactTraceLast(t *testing.T) {
	res, err := sorting.QuickSort([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Pivot strategy: last element (index 2)",
		"Partitioning: [3, 1, 2], pivot=2",
		"Compare a[0]=3 with pivot=2",
		"Compare a[1]=1 with pivot=2",
		"Swap a[0] and a[1]: [1, 3, 2]",
		"Swap a[1] and a[2]: [1, 2, 3]",
		"Pivot 2 placed at index 1",
		"Sorted array: [1, 2, 3]",
	}, res.Steps.Strings())
}

func TestQuickSort_StrategyRecordedBeforePartition(t *testing.T) {
	res, err := sorting.QuickSort([]int{4, 1, 3}, sorting.WithPivotStrategy(sorting.PivotFirst))
	require.NoError(t, err)
	steps := res.Steps.Strings()
	assert.Equal(t, "Pivot strategy: first element (index 0)", steps[0])
	// a[0]=4 moved to the end, so 4 is the first pivot.
	assert.Equal(t, "Partitioning: [3, 1, 4], pivot=4", steps[1])
}

func TestQuickSort_CustomIndexFallback(t *testing.T) {
	// Index 1 is in range for the first partition only; afterwards the
	// subranges [0,..] no longer contain it or do, depending on position.
	res, err := sorting.QuickSort([]int{5, 9, 1, 7},
		sorting.WithPivotStrategy(sorting.PivotCustom), sorting.WithPivotIndex(1))
	require.NoError(t, err)
	assert.Equal(t, "Pivot strategy: custom index 1", res.Steps.Strings()[0])
	assert.Equal(t, []int{1, 5, 7, 9}, res.Sorted)

	out, err := sorting.QuickSort([]int{5, 9, 1, 7},
		sorting.WithPivotStrategy(sorting.PivotCustom), sorting.WithPivotIndex(42))
	require.NoError(t, err)
	last, err := sorting.QuickSort([]int{5, 9, 1, 7})
	require.NoError(t, err)
	assert.Equal(t, last.Steps, out.Steps)

	noIndex, err := sorting.QuickSort([]int{5, 9, 1, 7}, sorting.WithPivotStrategy(sorting.PivotCustom))
	require.NoError(t, err)
	assert.Equal(t, last.Steps, noIndex.Steps)
}

func TestQuickSort_UnknownStrategy(t *testing.T) {
	_, err := sorting.QuickSort([]int{1}, sorting.WithPivotStrategy("median"))
	assert.ErrorIs(t, err, sorting.ErrUnknownPivotStrategy)

	_, err = sorting.ParsePivotStrategy("median")
	assert.ErrorIs(t, err, sorting.ErrUnknownPivotStrategy)

	s, err := sorting.ParsePivotStrategy("")
	require.NoError(t, err)
	assert.Equal(t, sorting.PivotLast, s)
}

func TestQuickSort_SwapsSnapshotWholeArray(t *testing.T) {
	res, err := sorting.QuickSort([]int{2, 8, 7, 1, 3, 5, 6, 4})
	require.NoError(t, err)
	for _, s := range res.Steps.Strings() {
		if strings.Contains(s, "Swap a[") {
			// Eight elements, seven separators in every snapshot.
			snapshot := s[strings.LastIndex(s, ": ")+2:]
			assert.Equal(t, 7, strings.Count(snapshot, ", "), s)
		}
	}
}

func TestSelectionSort_ExactTrace(t *testing.T) {
	res := sorting.SelectionSort([]int{2, 1})
	assert.Equal(t, []string{
		"Step 1: Start from index 0, current array: [2, 1]",
		"  Compare arr[1]=1 with current min arr[0]=2",
		"  New min found at index 1: 1",
		"  Swap arr[0] and arr[1]: [1, 2]",
		"Step 2: Start from index 1, current array: [1, 2]",
		"  Swap arr[1] and arr[1]: [1, 2]",
		"Sorted array: [1, 2]",
	}, res.Steps.Strings())
}

func TestSorting_Strings(t *testing.T) {
	in := []string{"pear", "apple", "fig"}
	assert.Equal(t, []string{"apple", "fig", "pear"}, sorting.MergeSort(in).Sorted)
	assert.Equal(t, []string{"apple", "fig", "pear"}, sorting.SelectionSort(in).Sorted)
}
