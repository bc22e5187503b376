package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/matrix"
)

// ErrMismatch indicates that an engine result disagrees with gonum.
var ErrMismatch = errors.New("converters: result does not match gonum")

// ErrNegativeCycle indicates that gonum found a negative cycle, so there are
// no shortest paths to compare against.
var ErrNegativeCycle = errors.New("converters: graph has a negative cycle")

// isEdge reports whether a matrix cell holds an edge.
func isEdge(w float64) bool {
	return w != 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}

// IsSymmetric reports whether m describes the same edges in both
// directions. Zero and +Inf cells both mean "no edge". A non-square matrix
// is never symmetric.
func IsSymmetric(m *matrix.Dense) bool {
	if m == nil || m.Rows() != m.Cols() {
		return false
	}
	rows := m.ToRows()
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			a, b := rows[i][j], rows[j][i]
			if isEdge(a) != isEdge(b) || (isEdge(a) && a != b) {
				return false
			}
		}
	}

	return true
}

// ToWeightedDirected builds a gonum weighted directed graph with nodes 0..n-1
// and an edge i→j for every off-diagonal edge cell.
func ToWeightedDirected(m *matrix.Dense) (*simple.WeightedDirectedGraph, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("converters: %w", err)
	}
	rows := m.ToRows()
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := range rows {
		g.AddNode(simple.Node(i))
	}
	for i, row := range rows {
		for j, w := range row {
			if i == j || !isEdge(w) {
				continue
			}
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(j), w))
		}
	}

	return g, nil
}

// ToWeightedUndirected builds a gonum weighted undirected graph from the
// upper triangle of m.
func ToWeightedUndirected(m *matrix.Dense) (*simple.WeightedUndirectedGraph, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("converters: %w", err)
	}
	rows := m.ToRows()
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range rows {
		g.AddNode(simple.Node(i))
	}
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			if w := rows[i][j]; isEdge(w) {
				g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(j), w))
			}
		}
	}

	return g, nil
}

// ToDirected builds a gonum directed graph from an adjacency list. Vertex
// names are numbered in first-seen order (declared vertices, then their
// neighbors); names[id] maps a node id back to its name. Self-loops are skipped.
func ToDirected(al *dfs.AdjacencyList) (g *simple.DirectedGraph, names []string, err error) {
	if al == nil {
		return nil, nil, fmt.Errorf("converters: %w", dfs.ErrGraphNil)
	}
	ids := make(map[string]int64)
	g = simple.NewDirectedGraph()
	id := func(name string) graph.Node {
		n, ok := ids[name]
		if !ok {
			n = int64(len(names))
			ids[name] = n
			names = append(names, name)
			g.AddNode(simple.Node(n))
		}

		return simple.Node(n)
	}
	for _, v := range al.Vertices() {
		id(v)
	}
	for _, v := range al.Vertices() {
		from := id(v)
		for _, nb := range al.Neighbors(v) {
			to := id(nb)
			if from.ID() == to.ID() {
				continue
			}
			g.SetEdge(g.NewEdge(from, to))
		}
	}

	return g, names, nil
}

// NodeIDs returns the integer ids of nodes, in order.
func NodeIDs(nodes []graph.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}

	return out
}
