package converters

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/matrix"
)

// tolerance for comparing path weights.
const tolerance = 1e-9

func sameWeight(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}

	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// CheckAllPairs compares an all-pairs distance matrix with gonum's
// Floyd-Warshall on the adjacency matrix m. It returns ErrNegativeCycle
// when gonum finds a negative cycle.
func CheckAllPairs(m *matrix.Dense, dist [][]float64) error {
	g, err := ToWeightedDirected(m)
	if err != nil {
		return err
	}
	paths, ok := path.FloydWarshall(g)
	if !ok {
		return ErrNegativeCycle
	}
	n := m.Rows()
	if len(dist) != n {
		return fmt.Errorf("%w: %d rows, want %d", ErrMismatch, len(dist), n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i != j {
				want = paths.Weight(int64(i), int64(j))
			}
			if !sameWeight(dist[i][j], want) {
				return fmt.Errorf("%w: dist[%d][%d]=%v, gonum %v", ErrMismatch, i, j, dist[i][j], want)
			}
		}
	}

	return nil
}

// CheckSingleSource compares single-source distances with gonum's Dijkstra.
func CheckSingleSource(m *matrix.Dense, source int, dist []float64) error {
	g, err := ToWeightedDirected(m)
	if err != nil {
		return err
	}
	sp := path.DijkstraFrom(simple.Node(source), g)
	for v := range dist {
		want := sp.WeightTo(int64(v))
		if v == source {
			want = 0
		}
		if !sameWeight(dist[v], want) {
			return fmt.Errorf("%w: dist[%d]=%v, gonum %v", ErrMismatch, v, dist[v], want)
		}
	}

	return nil
}

// CheckSpanningTotal compares an MST (or forest) weight with gonum's Kruskal
// on the upper triangle of m.
func CheckSpanningTotal(m *matrix.Dense, total float64) error {
	g, err := ToWeightedUndirected(m)
	if err != nil {
		return err
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	want := path.Kruskal(dst, g)
	if !sameWeight(total, want) {
		return fmt.Errorf("%w: total %v, gonum %v", ErrMismatch, total, want)
	}

	return nil
}

// CheckOrder verifies that order is a topological order of the directed
// graph m, and that gonum agrees the graph is acyclic.
func CheckOrder(m *matrix.Dense, order []int) error {
	g, err := ToWeightedDirected(m)
	if err != nil {
		return err
	}
	if _, err := topo.Sort(g); err != nil {
		return fmt.Errorf("%w: gonum cannot order the graph: %v", ErrMismatch, err)
	}
	n := m.Rows()
	if len(order) != n {
		return fmt.Errorf("%w: order has %d vertices, want %d", ErrMismatch, len(order), n)
	}
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	for i, v := range order {
		if v < 0 || v >= n || pos[v] != -1 {
			return fmt.Errorf("%w: order is not a permutation at %d", ErrMismatch, i)
		}
		pos[v] = i
	}
	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		if u, v := e.From().ID(), e.To().ID(); pos[u] > pos[v] {
			return fmt.Errorf("%w: edge %d→%d violated", ErrMismatch, u, v)
		}
	}

	return nil
}

// CheckNamedOrder verifies that order is a topological order of every
// vertex reachable in al.
func CheckNamedOrder(al *dfs.AdjacencyList, order []string) error {
	g, names, err := ToDirected(al)
	if err != nil {
		return err
	}
	if _, err := topo.Sort(g); err != nil {
		return fmt.Errorf("%w: gonum cannot order the graph: %v", ErrMismatch, err)
	}
	if len(order) != len(names) {
		return fmt.Errorf("%w: order has %d vertices, want %d", ErrMismatch, len(order), len(names))
	}
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		u, v := names[e.From().ID()], names[e.To().ID()]
		pu, okU := pos[u]
		pv, okV := pos[v]
		if !okU || !okV || pu > pv {
			return fmt.Errorf("%w: edge %s→%s violated", ErrMismatch, u, v)
		}
	}

	return nil
}

// CheckCyclic verifies that gonum also finds a cycle in the directed graph m.
// A non-zero diagonal cell is a self-loop and counts as a cycle.
func CheckCyclic(m *matrix.Dense) error {
	g, err := ToWeightedDirected(m)
	if err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		if w, _ := m.At(i, i); isEdge(w) {
			return nil
		}
	}
	if _, err := topo.Sort(g); err == nil {
		return fmt.Errorf("%w: gonum finds the graph acyclic", ErrMismatch)
	}

	return nil
}
