package matrix

import (
	"github.com/katalvlaran/algoviz/trace"
)

// ClosureResult is the outcome of TransitiveClosure.
type ClosureResult struct {
	Closure   [][]int   // reachability matrix (0/1)
	Steps     trace.Trace
	Snapshots [][][]int // matrix before k=0, then after every k
}

// TransitiveClosure runs Warshall's algorithm on a 0/1 adjacency matrix.
// Cell (i,j) becomes 1 when it already is, or when both (i,k) and (k,j) are.
//
// Trace:
//   - "Initial matrix: [[...]]"
//   - "Using node k as intermediate:" for every k
//   - "  Path from i to j via k found. Set closure[i][j] = 1" for new cells only
//   - "Transitive closure: [[...]]"
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonBinary (wrapped with the op name).
//
// Complexity: Time O(n³); Space O(n³) for the snapshots.
func TransitiveClosure(m *Dense) (*ClosureResult, error) {
	// 1. Validate: non-nil, square, strictly binary.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opTransitiveClosure, err)
	}
	if err := ValidateBinary(m); err != nil {
		return nil, matrixErrorf(opTransitiveClosure, err)
	}

	// 2. Working copy as ints.
	n := m.r
	c := make([][]int, n)
	for i := 0; i < n; i++ {
		c[i] = make([]int, n)
		for j := 0; j < n; j++ {
			c[i][j] = int(m.data[i*n+j])
		}
	}

	res := &ClosureResult{Snapshots: make([][][]int, 0, n+1)}
	res.Steps.Recordf("Initial matrix: %s", trace.Grid(c))
	res.Snapshots = append(res.Snapshots, cloneInts(c))

	// 3. k → i → j sweep; only 0 → 1 transitions are narrated.
	for k := 0; k < n; k++ {
		res.Steps.Recordf("Using node %d as intermediate:", k)
		for i := 0; i < n; i++ {
			if c[i][k] == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				if c[i][j] == 0 && c[k][j] == 1 {
					c[i][j] = 1
					res.Steps.Recordf("  Path from %d to %d via %d found. Set closure[%d][%d] = 1", i, j, k, i, j)
				}
			}
		}
		res.Snapshots = append(res.Snapshots, cloneInts(c))
	}

	// 4. Finalize.
	res.Closure = c
	res.Steps.Recordf("Transitive closure: %s", trace.Grid(c))

	return res, nil
}

func cloneInts(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i, r := range rows {
		out[i] = append([]int(nil), r...)
	}

	return out
}
