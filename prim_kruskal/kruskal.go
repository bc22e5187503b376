// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It reads the upper triangle of a weighted adjacency matrix and merges components with union-find.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/matrix"
)

// Kruskal computes the Minimum Spanning Tree (or forest) of the undirected
// graph encoded by the upper triangle of the adjacency matrix m.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare : malformed input.
//   - matrix.ErrNaN                             : a NaN cell.
//   - ErrDisconnected                           : with WithRequireConnected, when
//     fewer than n-1 edges could be added. The partial result is returned
//     alongside so its trace stays available.
//
// Steps:
//  1. Validate the matrix.
//  2. Collect every edge (i, j) with i < j whose cell is neither 0 nor +Inf.
//  3. Sort edges by ascending weight (stable, so ties keep (i, j) order).
//  4. Initialize DSU slices parent[] and rank[].
//  5. For each edge (u,v), if find(u) != find(v), union them and record the edge.
//     Once n-1 edges are in, the tree is complete.
//  6. Record the summary "MST edges: [...], total cost: X".
//
// Complexity: O(V² log V) for sorting the O(V²) candidate edges. Memory: O(V²).
func Kruskal(m *matrix.Dense, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Validate.
	w, err := readWeights(m)
	if err != nil {
		return nil, err
	}
	n := len(w)

	// 2. Collect upper-triangle edges in row-major order.
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if isEdge(w[i][j]) {
				edges = append(edges, Edge{From: i, To: j, Weight: w[i][j]})
			}
		}
	}

	// 3. Sort by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Initialize disjoint-set (union-find) structures.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint roots.
	union := func(ru, rv int) {
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// 5. Build the MST by iterating over sorted edges.
	res := &Result{Edges: make([]Edge, 0, n-1)}
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		res.Edges = append(res.Edges, e)
		res.Total += e.Weight
		res.Steps.Recordf("Add edge (%d, %d) with cost %s", e.From, e.To, fmtWeight(e.Weight))
		if len(res.Edges) == n-1 {
			break
		}
	}

	// 6. Summary and optional connectivity check.
	recordSummary(res)
	if cfg.RequireConnected && len(res.Edges) < n-1 {
		return res, fmt.Errorf("%w: %d of %d edges", ErrDisconnected, len(res.Edges), n-1)
	}

	return res, nil
}
