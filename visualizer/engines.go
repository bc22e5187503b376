package visualizer

import (
	"context"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/dp"
	"github.com/katalvlaran/algoviz/matrix"
	"github.com/katalvlaran/algoviz/prim_kruskal"
	"github.com/katalvlaran/algoviz/sorting"
)

// maxKnapsackCells bounds the (items+1)·(capacity+1) table built by the
// knapsack engine.
const maxKnapsackCells = 1 << 20

// runner decodes the fields an algorithm needs and runs its engine.
// It must return r.err() before touching the engine when validation failed.
type runner func(ctx context.Context, r *request, o *Options) (*Output, error)

func runMergeSort(_ context.Context, r *request, _ *Options) (*Output, error) {
	seq := r.sequence("array")
	if err := r.err(); err != nil {
		return nil, err
	}
	if seq.text {
		res := sorting.MergeSort(seq.strs)
		out := &Output{Result: res.Sorted, Steps: res.Steps.Strings()}
		if res.Tree != nil {
			out.Tree = res.Tree
		}
		return out, nil
	}
	res := sorting.MergeSort(seq.nums)
	out := &Output{Result: res.Sorted, Steps: res.Steps.Strings()}
	if res.Tree != nil {
		out.Tree = res.Tree
	}

	return out, nil
}

func runQuickSort(_ context.Context, r *request, o *Options) (*Output, error) {
	seq := r.sequence("array")
	name := r.text("pivot_strategy", string(sorting.PivotLast))
	strategy, perr := sorting.ParsePivotStrategy(name)
	if perr != nil {
		r.violate("pivot_strategy", "must be one of first, last, random, custom; got %q", name)
	}
	opts := []sorting.Option{sorting.WithPivotStrategy(strategy)}
	if idx, ok := r.integer("pivot_index", 0); ok {
		opts = append(opts, sorting.WithPivotIndex(idx))
	}
	if strategy == sorting.PivotRandom {
		seed, ok := r.integer("seed", 0)
		if !ok {
			seed = int(o.SeedSource())
		}
		opts = append(opts, sorting.WithSeed(int64(seed)))
	}
	if err := r.err(); err != nil {
		return nil, err
	}

	if seq.text {
		res, err := sorting.QuickSort(seq.strs, opts...)
		if err != nil {
			return nil, classify(err)
		}
		return &Output{Result: res.Sorted, Steps: res.Steps.Strings()}, nil
	}
	res, err := sorting.QuickSort(seq.nums, opts...)
	if err != nil {
		return nil, classify(err)
	}

	return &Output{Result: res.Sorted, Steps: res.Steps.Strings()}, nil
}

func runSelectionSort(_ context.Context, r *request, _ *Options) (*Output, error) {
	seq := r.sequence("array")
	if err := r.err(); err != nil {
		return nil, err
	}
	if seq.text {
		res := sorting.SelectionSort(seq.strs)
		return &Output{Result: res.Sorted, Steps: res.Steps.Strings()}, nil
	}
	res := sorting.SelectionSort(seq.nums)

	return &Output{Result: res.Sorted, Steps: res.Steps.Strings()}, nil
}

func runFloydWarshall(_ context.Context, r *request, _ *Options) (*Output, error) {
	m := r.matrix("matrix", weightedCells)
	if err := r.err(); err != nil {
		return nil, err
	}
	if err := matrix.InitDistances(m); err != nil {
		return nil, classify(err)
	}
	res, err := matrix.FloydWarshall(m)
	if err != nil {
		return nil, classify(err)
	}
	snaps := make([][][]Number, len(res.Snapshots))
	for i, s := range res.Snapshots {
		snaps[i] = numberGrid(s)
	}

	return &Output{
		Result:   numberGrid(res.Distances),
		Matrices: snaps,
		Steps:    res.Steps.Strings(),
	}, nil
}

func runWarshall(_ context.Context, r *request, _ *Options) (*Output, error) {
	m := r.matrix("matrix", numericCells)
	if m != nil {
		if err := matrix.ValidateBinary(m); err != nil {
			r.violate("matrix", "must contain only 0 or 1")
		}
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	res, err := matrix.TransitiveClosure(m)
	if err != nil {
		return nil, classify(err)
	}

	return &Output{
		Result:   res.Closure,
		Matrices: res.Snapshots,
		Steps:    res.Steps.Strings(),
	}, nil
}

func runKahn(ctx context.Context, r *request, _ *Options) (*Output, error) {
	m := r.matrix("matrix", weightedCells)
	if err := r.err(); err != nil {
		return nil, err
	}
	res, err := bfs.TopologicalSort(m, bfs.WithContext(ctx))
	if res == nil {
		return nil, classify(err)
	}
	out := &Output{Steps: res.Steps.Strings(), Matrix: numberGrid(m.ToRows())}
	if err != nil {
		return out, classify(err)
	}
	out.Result = res.Order

	return out, nil
}

func runTopoDFS(ctx context.Context, r *request, _ *Options) (*Output, error) {
	g := r.graph("graph")
	opts := []dfs.Option{dfs.WithContext(ctx)}
	if r.flag("detect_cycles") {
		opts = append(opts, dfs.WithCycleDetection())
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	res, err := dfs.TopologicalSort(g, opts...)
	if res == nil {
		return nil, classify(err)
	}
	out := &Output{Steps: res.Steps.Strings()}
	if err != nil {
		return out, classify(err)
	}
	out.Result = res.Order

	return out, nil
}

func runDijkstra(_ context.Context, r *request, _ *Options) (*Output, error) {
	m := r.matrix("matrix", weightedCells)
	source, _ := r.integer("source", 0)
	if m != nil && (source < 0 || source >= m.Rows()) {
		r.violate("source", "must be a vertex index in [0, %d), got %d", m.Rows(), source)
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	res, err := dijkstra.Dijkstra(m, dijkstra.Source(source))
	if err != nil {
		return nil, classify(err)
	}

	return &Output{
		Distances: numbers(res.Distances),
		Paths:     res.Paths,
		Steps:     res.Steps.Strings(),
	}, nil
}

// mstRunner adapts Prim or Kruskal.
func mstRunner(run func(*matrix.Dense, ...prim_kruskal.Option) (*prim_kruskal.Result, error)) runner {
	return func(_ context.Context, r *request, _ *Options) (*Output, error) {
		m := r.matrix("matrix", weightedCells)
		var opts []prim_kruskal.Option
		if r.flag("require_connected") {
			opts = append(opts, prim_kruskal.WithRequireConnected())
		}
		if err := r.err(); err != nil {
			return nil, err
		}
		res, err := run(m, opts...)
		if res == nil {
			return nil, classify(err)
		}
		out := &Output{
			Edges: edgeTuples(res.Edges),
			Total: Number(res.Total),
			Steps: res.Steps.Strings(),
		}

		return out, classify(err)
	}
}

var (
	runPrim    = mstRunner(prim_kruskal.Prim)
	runKruskal = mstRunner(prim_kruskal.Kruskal)
)

func runKnapsack(_ context.Context, r *request, _ *Options) (*Output, error) {
	weights := r.integers("weights")
	profits := r.integers("profits")
	capacity := r.requiredInteger("capacity")
	if weights != nil && profits != nil && len(weights) != len(profits) {
		r.violate("profits", "must have as many entries as weights (%d), got %d", len(weights), len(profits))
	}
	if capacity < 0 {
		r.violate("capacity", "must be non-negative, got %d", capacity)
	} else if capacity > maxKnapsackCells/(len(weights)+1)-1 {
		r.violate("capacity", "table of %d rows by %d+1 columns exceeds %d cells", len(weights)+1, capacity, maxKnapsackCells)
	}
	for i, w := range weights {
		if w < 0 {
			r.violate("weights", "element %d: must be non-negative, got %d", i, w)
		}
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	res, err := dp.Knapsack(weights, profits, capacity)
	if err != nil {
		return nil, classify(err)
	}

	return &Output{
		Result: res.Value,
		Matrix: res.Table,
		Items:  res.Items,
		Steps:  res.Steps.Strings(),
	}, nil
}

func runActivitySelection(_ context.Context, r *request, _ *Options) (*Output, error) {
	acts := r.activities("activities")
	if err := r.err(); err != nil {
		return nil, err
	}
	res, err := dp.ActivitySelection(acts)
	if err != nil {
		return nil, classify(err)
	}

	return &Output{
		Result: intervalPairs(res.Selected),
		Steps:  res.Steps.Strings(),
	}, nil
}
