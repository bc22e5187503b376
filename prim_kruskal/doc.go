// Package prim_kruskal provides traced Prim and Kruskal algorithms for the
// Minimum Spanning Tree (MST) of an undirected graph given as a weighted
// adjacency matrix.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects all vertices in V with minimum total weight.
//   - Both algorithms narrate every edge they add, then a summary line
//     "MST edges: [(u, v, w), ...], total cost: X", so a run can be replayed.
//
// Matrix conventions
//
//   - Cells equal to 0 or +Inf mean "no edge".
//   - Prim reads row u when vertex u joins the tree; Kruskal reads the upper
//     triangle (i < j). On a symmetric matrix both see the same graph.
//
// Algorithms Provided
//
//   - Prim(m, opts...): grows a single tree from vertex 0. A min-heap holds
//     candidates ordered by (cost, to, from); stale candidates whose target
//     is already selected are skipped on pop.
//     Time: O(V² log V) on a dense matrix.
//
//   - Kruskal(m, opts...): stable-sorts all candidate edges by weight and
//     merges components with union-find (path compression, union by rank).
//     Time: O(V² log V) dominated by sorting.
//
// Disconnected graphs
//
//	By default both are lenient: Prim spans only the component of vertex 0,
//	Kruskal returns a spanning forest. WithRequireConnected turns a result
//	with fewer than n-1 edges into ErrDisconnected.
//
// On a connected graph Prim and Kruskal always agree on the total weight;
// the chosen edges may differ when weights tie.
package prim_kruskal
