package dp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/dp"
)

func TestActivitySelection_Example(t *testing.T) {
	in := []dp.Interval{{1, 3}, {2, 4}, {3, 5}, {0, 6}, {5, 7}, {8, 9}}
	orig := append([]dp.Interval(nil), in...)

	res, err := dp.ActivitySelection(in)
	require.NoError(t, err)

	assert.Equal(t, []dp.Interval{{1, 3}, {3, 5}, {5, 7}, {8, 9}}, res.Selected)
	assert.Equal(t, []string{
		"Select activity (1, 3)",
		"Skip activity (2, 4)",
		"Select activity (3, 5)",
		"Skip activity (0, 6)",
		"Select activity (5, 7)",
		"Select activity (8, 9)",
		"Selected: [(1, 3), (3, 5), (5, 7), (8, 9)]",
	}, res.Steps.Strings())
	assert.Equal(t, orig, in, "input must not be reordered")
}

func TestActivitySelection_UnsortedAndNegative(t *testing.T) {
	res, err := dp.ActivitySelection([]dp.Interval{{4, 6}, {-5, -2}, {0.5, 1.5}})
	require.NoError(t, err)
	assert.Equal(t, []dp.Interval{{-5, -2}, {0.5, 1.5}, {4, 6}}, res.Selected)
	assert.Equal(t, "Select activity (0.5, 1.5)", res.Steps[1])
}

func TestActivitySelection_Empty(t *testing.T) {
	res, err := dp.ActivitySelection(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Selected)
	assert.Equal(t, []string{"Selected: []"}, res.Steps.Strings())
}

func TestActivitySelection_Invalid(t *testing.T) {
	_, err := dp.ActivitySelection([]dp.Interval{{3, 1}})
	assert.ErrorIs(t, err, dp.ErrInvalidInterval)
	_, err = dp.ActivitySelection([]dp.Interval{{math.NaN(), 1}})
	assert.ErrorIs(t, err, dp.ErrInvalidInterval)
}

func TestFibonacci(t *testing.T) {
	cases := map[int]int64{0: 0, 1: 1, 2: 1, 10: 55, 50: 12586269025, 92: 7540113804746346429}
	for n, want := range cases {
		got, err := dp.Fibonacci(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "F(%d)", n)
	}

	_, err := dp.Fibonacci(-1)
	assert.ErrorIs(t, err, dp.ErrNegativeN)
	_, err = dp.Fibonacci(93)
	assert.ErrorIs(t, err, dp.ErrOverflow)
}
