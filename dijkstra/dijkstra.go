// Package dijkstra implements the traced Dijkstra shortest-path engine on a
// square adjacency matrix.
//
// Notes on implementation choices:
//
//   - Cells equal to 0 or +Inf mean "no edge" and are never relaxed.
//   - We perform an upfront scan of all cells (O(V²)) to detect negative
//     weights and fail fast.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and discarding, on pop, entries whose distance is larger than the best
//     distance recorded for that vertex.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/matrix"
	"github.com/katalvlaran/algoviz/trace"
)

// Dijkstra computes shortest distances from the source vertex to every other
// vertex of the weighted adjacency matrix m, reconstructs the path to every
// reachable vertex, and narrates the run.
//
// Trace:
//   - "Start from source s"
//   - "Visit node u with current distance d" for every non-stale pop
//   - "Update distance of v to d via u" for every successful relaxation
//   - "Distances: [...]" and "Paths: [...]" summaries
//
// Preconditions and validation (in order):
//  1. m must be non-nil and square (matrix.ErrNilMatrix / matrix.ErrNonSquare).
//  2. Source must be in [0, n) (ErrSourceOutOfRange).
//  3. No cell may be negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(V² log V) on a matrix (each of the V² cells may push once).
//   - Space: O(V²) for the private copy and the heap.
func Dijkstra(m *matrix.Dense, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix shape.
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	n := m.Rows()

	// 3) Validate Source.
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 4) Private copy and negative-weight pre-scan.
	w := m.ToRows()
	for i := range w {
		for j, x := range w[i] {
			if x < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%s", ErrNegativeWeight, i, j, trace.Value(x))
			}
		}
	}

	// 5) Run.
	r := &runner{
		w:       w,
		n:       n,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return &Result{
		Distances: r.dist,
		Prev:      r.prev,
		Paths:     r.paths(),
		Steps:     r.steps,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	w       [][]float64 // private copy of the adjacency matrix
	n       int
	options Options
	dist    []float64 // best known distance from Source
	prev    []int     // predecessor on the best known path, -1 if none
	pq      nodePQ    // min-heap of pending (vertex, distance) entries
	steps   trace.Trace
}

// init sets every distance to +Inf, clears predecessors and seeds the heap
// with the source at distance 0.
func (r *runner) init() {
	for v := 0; v < r.n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}
	src := r.options.Source
	r.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
	r.steps.Recordf("Start from source %d", src)
}

// process pops the closest pending vertex until the heap is empty.
// Entries whose distance is worse than the recorded best are stale and skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist
		if d > r.dist[u] {
			continue
		}
		r.steps.Recordf("Visit node %d with current distance %s", u, trace.Value(d))
		r.relax(u)
	}

	r.steps.Recordf("Distances: %s", trace.List(r.dist))
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u int) {
	for v := 0; v < r.n; v++ {
		wt := r.w[u][v]
		if !r.isEdge(wt) {
			continue
		}
		alt := r.dist[u] + wt
		if alt >= r.dist[v] {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: alt})
		r.steps.Recordf("Update distance of %d to %s via %d", v, trace.Value(alt), u)
	}
}

// isEdge reports whether a cell is a traversable edge.
func (r *runner) isEdge(wt float64) bool {
	return wt != 0 && !math.IsInf(wt, 1) && wt < r.options.InfEdgeThreshold
}

// paths walks predecessor links from every reachable vertex back to the
// source and reverses them.
func (r *runner) paths() [][]int {
	out := make([][]int, 0, r.n)
	for t := 0; t < r.n; t++ {
		if math.IsInf(r.dist[t], 1) {
			continue
		}
		var p []int
		for x := t; x != -1; x = r.prev[x] {
			p = append(p, x)
		}
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
		out = append(out, p)
	}
	r.steps.Recordf("Paths: %s", trace.Grid(out))

	return out
}

// nodeItem represents a vertex and a candidate distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then vertex index,
// so equal distances pop in a deterministic order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
