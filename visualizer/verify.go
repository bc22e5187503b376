package visualizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/converters"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/matrix"
	"github.com/katalvlaran/algoviz/prim_kruskal"
)

// ErrNotVerifiable is returned by Verify when no independent check exists
// for the algorithm or for this particular input.
var ErrNotVerifiable = errors.New("visualizer: no independent check available")

// checker decodes the same fields as the matching runner, runs the engine
// and compares its answer with gonum.
type checker func(ctx context.Context, r *request) error

var checkers = map[string]checker{
	FloydWarshall: checkFloydWarshall,
	Dijkstra:      checkDijkstra,
	Prims:         checkPrim,
	Kruskal:       checkKruskal,
	TopoSort:      checkKahn,
	TopoSortDFS:   checkTopoDFS,
}

// Verify runs algorithm id on body and cross-checks its result against the
// gonum graph library. It returns nil when both agree, an error wrapping
// converters.ErrMismatch when they do not, and ErrNotVerifiable when there
// is nothing to compare with. Input errors are reported as by Run.
func Verify(ctx context.Context, id string, body []byte) (err error) {
	if _, ok := Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}
	check, ok := checkers[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotVerifiable, id)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := newRequest(body)
	if err != nil {
		return err
	}

	return check(ctx, req)
}

func checkFloydWarshall(_ context.Context, r *request) error {
	m := r.matrix("matrix", weightedCells)
	if err := r.err(); err != nil {
		return err
	}
	input := m.Clone()
	if err := matrix.InitDistances(m); err != nil {
		return classify(err)
	}
	res, err := matrix.FloydWarshall(m)
	if err != nil {
		return classify(err)
	}

	err = converters.CheckAllPairs(input, res.Distances)
	if errors.Is(err, converters.ErrNegativeCycle) {
		return fmt.Errorf("%w: graph has a negative cycle", ErrNotVerifiable)
	}

	return err
}

func checkDijkstra(_ context.Context, r *request) error {
	m := r.matrix("matrix", weightedCells)
	source, _ := r.integer("source", 0)
	if m != nil && (source < 0 || source >= m.Rows()) {
		r.violate("source", "must be a vertex index in [0, %d), got %d", m.Rows(), source)
	}
	if err := r.err(); err != nil {
		return err
	}
	res, err := dijkstra.Dijkstra(m, dijkstra.Source(source))
	if err != nil {
		return classify(err)
	}

	return converters.CheckSingleSource(m, source, res.Distances)
}

func checkKruskal(_ context.Context, r *request) error {
	m := r.matrix("matrix", weightedCells)
	if err := r.err(); err != nil {
		return err
	}
	res, err := prim_kruskal.Kruskal(m)
	if err != nil {
		return classify(err)
	}

	return converters.CheckSpanningTotal(m, res.Total)
}

// checkPrim only compares spanning trees of symmetric matrices: on a
// disconnected graph Prim covers vertex 0's component while gonum returns a
// whole forest, and gonum reads only the upper triangle.
func checkPrim(_ context.Context, r *request) error {
	m := r.matrix("matrix", weightedCells)
	if err := r.err(); err != nil {
		return err
	}
	res, err := prim_kruskal.Prim(m)
	if err != nil {
		return classify(err)
	}
	if !converters.IsSymmetric(m) {
		return fmt.Errorf("%w: matrix is not symmetric", ErrNotVerifiable)
	}
	if len(res.Edges) != m.Rows()-1 {
		return fmt.Errorf("%w: graph is disconnected", ErrNotVerifiable)
	}

	return converters.CheckSpanningTotal(m, res.Total)
}

func checkKahn(ctx context.Context, r *request) error {
	m := r.matrix("matrix", weightedCells)
	if err := r.err(); err != nil {
		return err
	}
	res, err := bfs.TopologicalSort(m, bfs.WithContext(ctx))
	if errors.Is(err, bfs.ErrCycleDetected) {
		return converters.CheckCyclic(m)
	}
	if err != nil {
		return classify(err)
	}

	return converters.CheckOrder(m, res.Order)
}

func checkTopoDFS(ctx context.Context, r *request) error {
	g := r.graph("graph")
	if err := r.err(); err != nil {
		return err
	}
	res, err := dfs.TopologicalSort(g, dfs.WithContext(ctx), dfs.WithCycleDetection())
	if errors.Is(err, dfs.ErrCycleDetected) {
		return fmt.Errorf("%w: graph has a cycle", ErrNotVerifiable)
	}
	if err != nil {
		return classify(err)
	}

	return converters.CheckNamedOrder(g, res.Order)
}
