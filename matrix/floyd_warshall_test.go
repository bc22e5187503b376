package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/matrix"
)

var inf = math.Inf(1)

// mustRows builds a Dense from a literal or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestFloydWarshall_Errors(t *testing.T) {
	_, err := matrix.FloydWarshall(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	ns, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.FloydWarshall(ns)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FloydWarshall(mustRows(t, [][]float64{{0, math.NaN()}, {1, 0}}))
	assert.ErrorIs(t, err, matrix.ErrNaN)
}

func TestFloydWarshall_Classic4x4(t *testing.T) {
	in := mustRows(t, [][]float64{
		{0, 3, inf, 7},
		{8, 0, 2, inf},
		{5, inf, 0, 1},
		{2, inf, inf, 0},
	})
	before := in.ToRows()

	res, err := matrix.FloydWarshall(in)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 3, 5, 6},
		{5, 0, 2, 3},
		{3, 6, 0, 1},
		{2, 5, 7, 0},
	}, res.Distances)

	// Caller's matrix untouched; snapshots = initial + one per k.
	assert.Equal(t, before, in.ToRows())
	require.Len(t, res.Snapshots, 5)
	assert.Equal(t, before, res.Snapshots[0])
	assert.Equal(t, res.Distances, res.Snapshots[4])

	steps := res.Steps.Strings()
	assert.Equal(t, "Initial matrix: [[0, 3, inf, 7], [8, 0, 2, inf], [5, inf, 0, 1], [2, inf, inf, 0]]", steps[0])
	assert.Equal(t, "Using node 0 as intermediate:", steps[1])
	assert.Contains(t, steps, "  Update dist[1][3] from inf to 15 (via 0)")
	assert.True(t, strings.HasPrefix(steps[len(steps)-1], "Final matrix: "))
}

func TestFloydWarshall_OnlyImprovementsAreTraced(t *testing.T) {
	in := mustRows(t, [][]float64{
		{0, 1},
		{1, 0},
	})
	res, err := matrix.FloydWarshall(in)
	require.NoError(t, err)
	for _, s := range res.Steps {
		assert.NotContains(t, s, "Update")
	}
	assert.Len(t, res.Steps, 4) // initial, k=0, k=1, final
}

func TestFloydWarshall_Idempotent(t *testing.T) {
	in := mustRows(t, [][]float64{
		{0, 4, inf, inf, 1},
		{inf, 0, 2, inf, inf},
		{inf, inf, 0, 3, inf},
		{6, inf, inf, 0, inf},
		{inf, 1, inf, 9, 0},
	})
	first, err := matrix.FloydWarshall(in)
	require.NoError(t, err)

	again, err := matrix.FloydWarshall(mustRows(t, first.Distances))
	require.NoError(t, err)
	assert.Equal(t, first.Distances, again.Distances)
	for _, s := range again.Steps {
		assert.NotContains(t, s, "Update")
	}
	assert.Len(t, first.Distances, 5)
	for _, row := range first.Distances {
		assert.Len(t, row, 5)
	}
}

func TestInitDistances(t *testing.T) {
	m := mustRows(t, [][]float64{
		{5, 0, 2},
		{0, 7, 0},
		{3, 4, 9},
	})
	require.NoError(t, matrix.InitDistances(m))
	assert.Equal(t, [][]float64{
		{0, inf, 2},
		{inf, 0, inf},
		{3, 4, 0},
	}, m.ToRows())

	ns, _ := matrix.NewDense(1, 2)
	assert.ErrorIs(t, matrix.InitDistances(ns), matrix.ErrNonSquare)
}
