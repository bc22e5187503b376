package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/matrix"
	"github.com/katalvlaran/algoviz/trace"
)

// readWeights validates m and returns a private row-major copy.
func readWeights(m *matrix.Dense) ([][]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("prim_kruskal: %w", err)
	}
	if err := matrix.ValidateNoNaN(m); err != nil {
		return nil, fmt.Errorf("prim_kruskal: %w", err)
	}

	return m.ToRows(), nil
}

// isEdge reports whether a cell holds an edge (0 and +Inf mean "no edge").
func isEdge(w float64) bool {
	return w != 0 && !math.IsInf(w, 1)
}

func fmtWeight(w float64) string { return trace.Value(w) }

// recordSummary appends "MST edges: [(u, v, w), ...], total cost: X".
func recordSummary(res *Result) {
	res.Steps.Recordf("MST edges: %s, total cost: %s", trace.List(res.Edges), fmtWeight(res.Total))
}
