package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// assertTopological verifies that order is a permutation of [0,n) in which
// every edge u→v has u before v.
func assertTopological(t *testing.T, rows [][]float64, order []int) {
	t.Helper()
	require.Len(t, order, len(rows))
	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	require.Len(t, pos, len(rows))
	for u := range rows {
		for v, w := range rows[u] {
			if w != 0 {
				assert.Less(t, pos[u], pos[v], "edge %d→%d", u, v)
			}
		}
	}
}

func TestTopologicalSort_DiamondTrace(t *testing.T) {
	// 0→1, 0→2, 1→3, 2→3
	rows := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	res, err := bfs.TopologicalSort(mustRows(t, rows))
	require.NoError(t, err)

	assert.False(t, res.Cycle)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2}, res.Indegrees)
	assert.Equal(t, []string{
		"Initial indegrees: [0, 1, 1, 2]",
		"Start with zero indegree nodes: [0]",
		"Remove vertex 0, current order: [0]",
		"  Decrement indegree of 1 to 0",
		"  Add 1 to queue",
		"  Decrement indegree of 2 to 0",
		"  Add 2 to queue",
		"Remove vertex 1, current order: [0, 1]",
		"  Decrement indegree of 3 to 1",
		"Remove vertex 2, current order: [0, 1, 2]",
		"  Decrement indegree of 3 to 0",
		"  Add 3 to queue",
		"Remove vertex 3, current order: [0, 1, 2, 3]",
		"Topological order: [0, 1, 2, 3]",
	}, res.Steps.Strings())
	assertTopological(t, rows, res.Order)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	// 0→1→2→0 plus an independent vertex 3.
	rows := [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
	}
	res, err := bfs.TopologicalSort(mustRows(t, rows))
	require.ErrorIs(t, err, bfs.ErrCycleDetected)
	require.NotNil(t, res)

	assert.True(t, res.Cycle)
	assert.Nil(t, res.Order)
	assert.Equal(t, "Cycle detected! No topological order.", res.Steps[len(res.Steps)-1])
}

func TestTopologicalSort_SelfLoop(t *testing.T) {
	res, err := bfs.TopologicalSort(mustRows(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, bfs.ErrCycleDetected)
	assert.True(t, res.Cycle)
}

func TestTopologicalSort_Validation(t *testing.T) {
	_, err := bfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = bfs.TopologicalSort(mustRows(t, [][]float64{{0}}), bfs.WithOnDequeue(nil))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestTopologicalSort_Hook(t *testing.T) {
	rows := [][]float64{
		{0, 0, 1},
		{1, 0, 0},
		{0, 0, 0},
	}
	var seen []int
	res, err := bfs.TopologicalSort(mustRows(t, rows), bfs.WithOnDequeue(func(v int) {
		seen = append(seen, v)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Order)
	assert.Equal(t, res.Order, seen)
	assertTopological(t, rows, res.Order)
}

func TestTopologicalSort_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.TopologicalSort(mustRows(t, [][]float64{{0, 1}, {0, 0}}), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
