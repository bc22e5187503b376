// Package dfs implements the depth-first topological sort over a directed
// graph given as an ordered adjacency list, narrated step by step.
//
// What:
//
//   - AdjacencyList: vertex name → successor names, remembering the order in
//     which vertices were declared so traversal is reproducible.
//   - TopologicalSort: explores as far as possible along each branch before
//     backtracking, pushes each vertex on exit, and reverses that post-order.
//     Supports:
//   - Cancellation via context.Context
//   - Optional cycle detection using vertex coloring (White, Gray, Black):
//     a Gray successor is a back-edge.
//
// Why:
//   - Explain dependency ordering (build systems, course prerequisites,
//     task schedulers) one visit at a time.
//
// Determinism:
//
//	Roots are tried in declaration order and successors in listed order.
//	The result is a valid topological order of a DAG but may differ from
//	the one Kahn's algorithm in package bfs produces.
//
// Complexity:
//
//   - Time:   O(V + E), plus O(V log V) per visit for the sorted "visited" narration.
//   - Memory: O(V) for the recursion stack and state map.
package dfs
