package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/matrix"
	"github.com/katalvlaran/algoviz/prim_kruskal"
)

// triangle is an undirected triangle 0—1 (1), 1—2 (2), 0—2 (3).
// Its MST is {0—1, 1—2} with total weight 3.
var triangle = [][]float64{
	{0, 1, 3},
	{1, 0, 2},
	{3, 2, 0},
}

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// buildConnected creates a symmetric matrix with n vertices: a chain
// 0—1—…—(n-1) guarantees connectivity, then extra random edges are added.
// The RNG is seeded for reproducibility.
func buildConnected(t testing.TB, n int, seed int64) *matrix.Dense {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	set := func(i, j int, w float64) {
		rows[i][j], rows[j][i] = w, w
	}
	for i := 0; i+1 < n; i++ {
		set(i, i+1, float64(rng.Intn(10)+1))
	}
	for k := 0; k < 2*n; k++ {
		i, j := rng.Intn(n), rng.Intn(n)
		if i != j {
			set(i, j, float64(rng.Intn(100)+1))
		}
	}

	return mustRows(t, rows)
}

func TestPrim_TriangleTrace(t *testing.T) {
	res, err := prim_kruskal.Prim(mustRows(t, triangle))
	require.NoError(t, err)

	assert.Equal(t, []prim_kruskal.Edge{{0, 1, 1}, {1, 2, 2}}, res.Edges)
	assert.Equal(t, 3.0, res.Total)
	assert.Equal(t, []string{
		"Add edge (0, 1) with cost 1",
		"Add edge (1, 2) with cost 2",
		"MST edges: [(0, 1, 1), (1, 2, 2)], total cost: 3",
	}, res.Steps.Strings())
}

func TestKruskal_TriangleTrace(t *testing.T) {
	res, err := prim_kruskal.Kruskal(mustRows(t, triangle))
	require.NoError(t, err)

	assert.Equal(t, []prim_kruskal.Edge{{0, 1, 1}, {1, 2, 2}}, res.Edges)
	assert.Equal(t, 3.0, res.Total)
	assert.Equal(t, "MST edges: [(0, 1, 1), (1, 2, 2)], total cost: 3", res.Steps[len(res.Steps)-1])
}

func TestMST_InfMeansNoEdge(t *testing.T) {
	inf := math.Inf(1)
	m := mustRows(t, [][]float64{
		{0, inf, 4},
		{inf, 0, 5},
		{4, 5, 0},
	})
	for name, run := range map[string]func(*matrix.Dense, ...prim_kruskal.Option) (*prim_kruskal.Result, error){
		"prim":    prim_kruskal.Prim,
		"kruskal": prim_kruskal.Kruskal,
	} {
		res, err := run(m)
		require.NoError(t, err, name)
		assert.Equal(t, 9.0, res.Total, name)
		assert.Len(t, res.Edges, 2, name)
	}
}

func TestMST_SingleVertex(t *testing.T) {
	m := mustRows(t, [][]float64{{0}})
	res, err := prim_kruskal.Prim(m, prim_kruskal.WithRequireConnected())
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Equal(t, []string{"MST edges: [], total cost: 0"}, res.Steps.Strings())

	res, err = prim_kruskal.Kruskal(m, prim_kruskal.WithRequireConnected())
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
}

func TestMST_Disconnected(t *testing.T) {
	// Two components: {0,1} and {2,3}.
	m := mustRows(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 2, 0},
	})

	// Lenient: Prim spans the component of vertex 0 only.
	res, err := prim_kruskal.Prim(m)
	require.NoError(t, err)
	assert.Equal(t, []prim_kruskal.Edge{{0, 1, 1}}, res.Edges)

	// Lenient: Kruskal returns the spanning forest.
	res, err = prim_kruskal.Kruskal(m)
	require.NoError(t, err)
	assert.Equal(t, []prim_kruskal.Edge{{0, 1, 1}, {2, 3, 2}}, res.Edges)
	assert.Equal(t, 3.0, res.Total)

	_, err = prim_kruskal.Prim(m, prim_kruskal.WithRequireConnected())
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = prim_kruskal.Kruskal(m, prim_kruskal.WithRequireConnected())
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestMST_Validation(t *testing.T) {
	_, err := prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	ns, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = prim_kruskal.Kruskal(ns)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	nan := mustRows(t, [][]float64{{0, math.NaN()}, {1, 0}})
	_, err = prim_kruskal.Prim(nan)
	assert.ErrorIs(t, err, matrix.ErrNaN)
}

func TestCompute_Dispatch(t *testing.T) {
	m := mustRows(t, triangle)
	res, err := prim_kruskal.Compute(m, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Total)

	res, err = prim_kruskal.Compute(m)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Total)

	_, err = prim_kruskal.Compute(m, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestPrimKruskal_SameTotal checks that both algorithms agree on the MST
// weight of random connected graphs.
func TestPrimKruskal_SameTotal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m := buildConnected(t, 12, seed)
		p, err := prim_kruskal.Prim(m, prim_kruskal.WithRequireConnected())
		require.NoError(t, err)
		k, err := prim_kruskal.Kruskal(m, prim_kruskal.WithRequireConnected())
		require.NoError(t, err)

		assert.Len(t, p.Edges, 11)
		assert.Len(t, k.Edges, 11)
		assert.Equal(t, k.Total, p.Total, "seed %d", seed)
	}
}
