package bfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/matrix"
	"github.com/katalvlaran/algoviz/trace"
)

// TopologicalSort orders the vertices of the directed graph m with Kahn's
// algorithm: repeatedly remove a vertex of in-degree zero in FIFO order.
//
// A cell m[u][v] that is neither 0 nor +Inf is an edge u→v; a non-zero
// diagonal cell is a self-loop and therefore a cycle.
//
// On a cyclic graph the returned result has Cycle set, a nil Order, a trace
// ending with "Cycle detected! No topological order." and the error wraps
// ErrCycleDetected.
//
// Complexity: O(V²) time, O(V) extra memory.
func TopologicalSort(m *matrix.Dense, opts ...Option) (*KahnResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	if err := matrix.ValidateNoNaN(m); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	w := &walker{
		adj:  m.ToRows(),
		n:    m.Rows(),
		opts: o,
		res:  &KahnResult{},
	}
	if err := w.run(); err != nil {
		return nil, err
	}

	if len(w.order) != w.n {
		w.res.Cycle = true
		w.res.Steps.Record("Cycle detected! No topological order.")

		return w.res, fmt.Errorf("%w: %d of %d vertices ordered", ErrCycleDetected, len(w.order), w.n)
	}
	w.res.Order = w.order
	w.res.Steps.Recordf("Topological order: %s", trace.List(w.order))

	return w.res, nil
}

// walker holds the mutable state of one run.
type walker struct {
	adj   [][]float64
	n     int
	opts  Options
	indeg []int
	queue []int
	order []int
	res   *KahnResult
}

// isEdge reports whether a cell holds an edge.
func isEdge(w float64) bool {
	return w != 0 && !math.IsInf(w, 1)
}

// run computes in-degrees, seeds the queue and drains it.
func (w *walker) run() error {
	w.indeg = make([]int, w.n)
	for i := 0; i < w.n; i++ {
		for j := 0; j < w.n; j++ {
			if isEdge(w.adj[i][j]) {
				w.indeg[j]++
			}
		}
	}
	w.res.Indegrees = append([]int(nil), w.indeg...)
	w.res.Steps.Recordf("Initial indegrees: %s", trace.List(w.indeg))

	w.queue = make([]int, 0, w.n)
	for v := 0; v < w.n; v++ {
		if w.indeg[v] == 0 {
			w.queue = append(w.queue, v)
		}
	}
	w.res.Steps.Recordf("Start with zero indegree nodes: %s", trace.List(w.queue))

	w.order = make([]int, 0, w.n)
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.dequeue()
		w.release(u)
	}

	return nil
}

// dequeue pops the first vertex, appends it to the order and notifies the hook.
func (w *walker) dequeue() int {
	u := w.queue[0]
	w.queue = w.queue[1:]
	w.order = append(w.order, u)
	w.opts.OnDequeue(u)
	w.res.Steps.Recordf("Remove vertex %d, current order: %s", u, trace.List(w.order))

	return u
}

// release removes u's outgoing edges and enqueues every vertex whose
// in-degree drops to zero.
func (w *walker) release(u int) {
	for v := 0; v < w.n; v++ {
		if !isEdge(w.adj[u][v]) {
			continue
		}
		w.indeg[v]--
		w.res.Steps.Recordf("  Decrement indegree of %d to %d", v, w.indeg[v])
		if w.indeg[v] == 0 {
			w.queue = append(w.queue, v)
			w.res.Steps.Recordf("  Add %d to queue", v)
		}
	}
}
