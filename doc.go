// Package algoviz is a step-traced algorithm engine for teaching.
//
// Every algorithm records an ordered, human-readable narration of what it
// does, so a front-end can replay the run one line at a time. Engines are
// pure functions of their input: they allocate per call, share nothing and
// never log.
//
// 🚀 What is inside?
//
//	trace/          the append-only Trace and value formatters
//	sorting/        merge sort (with merge tree), quick sort, selection sort
//	matrix/         Dense matrices, Floyd–Warshall, Warshall closure
//	bfs/            Kahn's topological sort over an adjacency matrix
//	dfs/            DFS topological sort over an adjacency list
//	dijkstra/       single-source shortest paths with path reconstruction
//	prim_kruskal/   minimum spanning trees (Prim) and forests (Kruskal)
//	dp/             0/1 knapsack, activity selection, Fibonacci
//	visualizer/     the catalog, JSON input validation and dispatch
//	converters/     gonum adapters used to cross-check graph results
//
// The service lives under internal/ (HTTP API, config, logging, metrics,
// CLI) and is started by cmd/algoviz:
//
//	algoviz serve --addr :5000
//	echo '{"array":[5,2,4]}' | algoviz run merge-sort
//
// Quick ASCII example, the graph behind the Dijkstra example:
//
//	    0 ──1──▶ 1
//	    │        │
//	    4        2
//	    ▼        ▼
//	    2 ◀──────┘
//
// Dijkstra from 0 yields distances [0, 1, 3] and paths [[0], [0, 1], [0, 1, 2]].
package algoviz
