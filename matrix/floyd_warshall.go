// Package matrix: traced dense APSP (Floyd–Warshall).
//
// Contract:
//   - Square matrix; +Inf means "no path"; the diagonal is expected to be 0
//     (InitDistances prepares a raw 0/w adjacency matrix that way).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/trace"
)

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall     = "FloydWarshall"
	opTransitiveClosure = "TransitiveClosure"
	opInitDistances     = "InitDistances"
)

// matrixErrorf wraps err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// APSPResult is the outcome of FloydWarshall.
type APSPResult struct {
	Distances [][]float64   // final distance matrix; +Inf where unreachable
	Steps     trace.Trace   // initial matrix, per-k headers, improved cells, final matrix
	Snapshots [][][]float64 // matrix before k=0, then after every k
}

// InitDistances converts an adjacency matrix (0 / w) into a distance matrix
// in place: diagonal = 0; off-diagonal 0 → +Inf; non-zero → unchanged.
// Complexity: O(n²).
func InitDistances(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opInitDistances, err)
	}

	n := m.r
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				m.data[base+j] = 0 // distance from a node to itself
			case m.data[base+j] == 0:
				m.data[base+j] = inf // no direct edge
			}
		}
	}

	return nil
}

// FloydWarshall computes all-pairs shortest paths on a clone of m and
// narrates every strict improvement.
//
// Trace:
//   - "Initial matrix: [[...]]"
//   - "Using node k as intermediate:" for every k
//   - "  Update dist[i][j] from old to new (via k)" for improved cells only
//   - "Final matrix: [[...]]"
//
// Loop order is fixed (k → i → j) so the trace is deterministic.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaN (all wrapped with the op name).
//
// Complexity: Time O(n³); Space O(n³) for the snapshots.
func FloydWarshall(m *Dense) (*APSPResult, error) {
	// 1. Validate: non-nil, square, no NaN.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}
	if err := ValidateNoNaN(m); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}

	// 2. Private working copy and initial snapshot.
	d := m.Clone()
	n := d.r
	data := d.data
	res := &APSPResult{Snapshots: make([][][]float64, 0, n+1)}
	initial := d.ToRows()
	res.Steps.Recordf("Initial matrix: %s", trace.Grid(initial))
	res.Snapshots = append(res.Snapshots, initial)

	// 3. Relaxation. Unreachable legs are skipped before computing candidates;
	//    this never changes which cells improve.
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, ij   float64
		cand         float64
	)
	for k = 0; k < n; k++ {
		res.Steps.Recordf("Using node %d as intermediate:", k)
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij { // strict improvement only
					data[baseI+j] = cand
					res.Steps.Recordf("  Update dist[%d][%d] from %s to %s (via %d)",
						i, j, trace.Value(ij), trace.Value(cand), k)
				}
			}
		}
		// 4. Snapshot after every intermediate vertex.
		res.Snapshots = append(res.Snapshots, d.ToRows())
	}

	// 5. Finalize.
	res.Distances = d.ToRows()
	res.Steps.Recordf("Final matrix: %s", trace.Grid(res.Distances))

	return res, nil
}
