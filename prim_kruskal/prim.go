// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from vertex 0 of a weighted adjacency matrix using a min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algoviz/matrix"
)

// Prim computes the Minimum Spanning Tree of the undirected graph encoded by
// the adjacency matrix m, growing outwards from vertex 0.
//
// Cells equal to 0 or +Inf mean "no edge"; row u is read when u joins the
// tree, so an asymmetric matrix is interpreted through its rows.
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
//  2. Seed the heap with the virtual entry (cost 0, to 0, from -1).
//  3. Pop the cheapest candidate; skip it if its target is already selected.
//  4. Otherwise select the target, record the edge (unless it is the virtual
//     root entry), and push every edge towards unselected vertices.
//  5. Record the summary "MST edges: [...], total cost: X".
//
// Candidates are ordered by (cost, to, from), so ties break towards the
// smaller target and then the smaller source.
//
// Complexity: O(V² log V) time on a dense matrix, O(V²) memory for the heap.
func Prim(m *matrix.Dense, opts ...Option) (*Result, error) {
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

	// 2. Initialize selection set and the heap with the virtual root entry.
	selected := make([]bool, n)
	res := &Result{Edges: make([]Edge, 0, n-1)}
	pq := &edgePQ{{weight: 0, to: 0, from: -1}}
	heap.Init(pq)

	// 3-4. Main loop.
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate)
		u := c.to
		if selected[u] {
			continue
		}
		selected[u] = true
		if c.from != -1 {
			e := Edge{From: c.from, To: u, Weight: c.weight}
			res.Edges = append(res.Edges, e)
			res.Total += e.Weight
			res.Steps.Recordf("Add edge (%d, %d) with cost %s", e.From, e.To, fmtWeight(e.Weight))
		}
		for v := 0; v < n; v++ {
			if !selected[v] && isEdge(w[u][v]) {
				heap.Push(pq, candidate{weight: w[u][v], to: v, from: u})
			}
		}
	}

	// 5. Summary and optional connectivity check.
	recordSummary(res)
	if cfg.RequireConnected && len(res.Edges) < n-1 {
		return res, fmt.Errorf("%w: %d of %d edges", ErrDisconnected, len(res.Edges), n-1)
	}

	return res, nil
}

// candidate is a heap entry: the edge from→to with the given weight.
type candidate struct {
	weight float64
	to     int
	from   int
}

// edgePQ implements heap.Interface for a min-heap of candidates ordered by
// (weight, to, from).
type edgePQ []candidate

// Len returns the number of candidates in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by weight, then target, then source.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.to != b.to {
		return a.to < b.to
	}

	return a.from < b.from
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate to the heap.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last candidate; heap.Pop has already moved
// the minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
