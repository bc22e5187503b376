// Package matrix holds the dense adjacency-matrix type used by the graph
// engines, its validators, and the two matrix-iterating algorithms of the
// visualizer: Floyd–Warshall all-pairs shortest paths and Warshall's
// transitive closure.
//
// Representation:
//
//   - Dense is a row-major float64 grid stored in one flat slice.
//   - For weighted algorithms +Inf means "no edge"; InitDistances converts a
//     raw 0/w adjacency matrix (0 = no edge) into that form and zeroes the
//     diagonal.
//   - Reachability matrices hold exactly 0 or 1 (ValidateBinary).
//
// Traced algorithms:
//
//   - FloydWarshall: k → i → j relaxation. The trace starts with the initial
//     matrix, announces every intermediate vertex k, records only the cells
//     that strictly improve, and ends with the final matrix. A snapshot is
//     taken before the first k and after every k (n+1 snapshots).
//   - TransitiveClosure: same loop shape over booleans; only newly discovered
//     reachability is recorded.
//
// Both run on a private clone; the caller's matrix is never modified.
//
// Complexity:
//
//   - FloydWarshall / TransitiveClosure: Time O(n³), Space O(n³) for the
//     snapshot list (n+1 copies of an n×n matrix).
package matrix
