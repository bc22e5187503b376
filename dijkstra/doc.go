// Package dijkstra provides a traced implementation of Dijkstra's
// shortest-path algorithm over a square adjacency matrix with non-negative
// weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to
//     every reachable vertex and reconstructs one shortest path per vertex.
//   - It relies on a min-heap (priority queue) to always expand the
//     next-closest vertex, with lazy decrease-key: improved distances are
//     pushed again and stale heap entries are skipped on pop.
//   - Every visit and every relaxation is narrated into a trace.Trace so the
//     run can be replayed step by step.
//
// Matrix conventions:
//
//   - A cell m[u][v] is the weight of the directed edge u→v.
//   - 0 and +Inf both mean "no edge". Use WithInfEdgeThreshold to treat
//     large finite weights as impassable too.
//   - Negative cells are rejected up front with ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O(V² log V) on a dense matrix.
//   - Space: O(V²).
//
// See: https://en.wikipedia.org/wiki/Dijkstra%27s_algorithm
package dijkstra
