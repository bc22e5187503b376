// Package bfs provides Kahn's breadth-first topological sort over a directed
// graph given as an adjacency matrix, narrated step by step.
//
// What
//
//   - Compute every vertex's in-degree, queue the zero in-degree vertices,
//     then repeatedly remove the queue head, append it to the order and
//     decrement the in-degree of its successors.
//   - Returns a KahnResult containing:
//   - Order: the topological order (nil on a cycle)
//   - Indegrees: the initial in-degree of every vertex
//   - Cycle: whether a directed cycle prevented a full order
//   - Steps: the narration
//   - Supports cancellation via WithContext and an OnDequeue hook.
//
// Determinism
//
//	The queue is FIFO and successors are scanned in ascending index order,
//	so the order is fully reproducible. It is not necessarily the order the
//	DFS-based sorter in package dfs produces; both are valid.
//
// Cycles
//
//	When fewer than n vertices are removed, the remaining ones sit on or
//	behind a cycle. TopologicalSort then returns the result with Cycle set
//	together with an error wrapping ErrCycleDetected, so callers can still
//	show the trace.
//
// Complexity
//
//   - Time:   O(V²) on a dense matrix.
//   - Memory: O(V) for in-degrees and the queue.
package bfs
