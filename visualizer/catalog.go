package visualizer

import (
	"fmt"
	"sort"
)

// Algorithm ids, as used in URLs and on the command line.
const (
	MergeSort         = "merge-sort"
	QuickSort         = "quick-sort"
	SelectionSort     = "selection-sort"
	FloydWarshall     = "floyd-warshall"
	Warshall          = "warshall"
	TopoSort          = "topo-sort"
	TopoSortDFS       = "topo-sort-dfs"
	Dijkstra          = "dijkstra"
	Prims             = "prims"
	Kruskal           = "kruskal"
	Knapsack          = "knapsack"
	ActivitySelection = "activity-selection"
)

// Category groups algorithms for listing.
type Category string

const (
	CategorySorting Category = "sorting"
	CategoryGraph   Category = "graph"
	CategoryDP      Category = "dynamic-programming"
)

// Algorithm describes one invokable engine.
type Algorithm struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Inputs      []string `json:"inputs"`
	Description string   `json:"description"`

	run runner
}

var catalog = map[string]Algorithm{
	MergeSort: {
		ID: MergeSort, Name: "Merge sort", Category: CategorySorting,
		Inputs:      []string{"array"},
		Description: "Stable top-down merge sort with a merge tree.",
		run:         runMergeSort,
	},
	QuickSort: {
		ID: QuickSort, Name: "Quick sort", Category: CategorySorting,
		Inputs:      []string{"array", "pivot_strategy?", "pivot_index?", "seed?"},
		Description: "Lomuto quick sort with first/last/random/custom pivots.",
		run:         runQuickSort,
	},
	SelectionSort: {
		ID: SelectionSort, Name: "Selection sort", Category: CategorySorting,
		Inputs:      []string{"array"},
		Description: "Selection sort narrating every comparison and swap.",
		run:         runSelectionSort,
	},
	FloydWarshall: {
		ID: FloydWarshall, Name: "Floyd-Warshall", Category: CategoryGraph,
		Inputs:      []string{"matrix"},
		Description: "All-pairs shortest paths; off-diagonal 0 or null means no edge.",
		run:         runFloydWarshall,
	},
	Warshall: {
		ID: Warshall, Name: "Warshall", Category: CategoryGraph,
		Inputs:      []string{"matrix"},
		Description: "Transitive closure of a 0/1 reachability matrix.",
		run:         runWarshall,
	},
	TopoSort: {
		ID: TopoSort, Name: "Topological sort (Kahn)", Category: CategoryGraph,
		Inputs:      []string{"matrix"},
		Description: "Kahn's algorithm over an adjacency matrix; reports cycles.",
		run:         runKahn,
	},
	TopoSortDFS: {
		ID: TopoSortDFS, Name: "Topological sort (DFS)", Category: CategoryGraph,
		Inputs:      []string{"graph", "detect_cycles?"},
		Description: "Depth-first topological sort over an adjacency list.",
		run:         runTopoDFS,
	},
	Dijkstra: {
		ID: Dijkstra, Name: "Dijkstra", Category: CategoryGraph,
		Inputs:      []string{"matrix", "source?"},
		Description: "Single-source shortest paths with path reconstruction.",
		run:         runDijkstra,
	},
	Prims: {
		ID: Prims, Name: "Prim's MST", Category: CategoryGraph,
		Inputs:      []string{"matrix", "require_connected?"},
		Description: "Minimum spanning tree grown from vertex 0.",
		run:         runPrim,
	},
	Kruskal: {
		ID: Kruskal, Name: "Kruskal's MST", Category: CategoryGraph,
		Inputs:      []string{"matrix", "require_connected?"},
		Description: "Minimum spanning forest via sorted edges and union-find.",
		run:         runKruskal,
	},
	Knapsack: {
		ID: Knapsack, Name: "0/1 knapsack", Category: CategoryDP,
		Inputs:      []string{"weights", "profits", "capacity"},
		Description: "Table-filling 0/1 knapsack with item traceback.",
		run:         runKnapsack,
	},
	ActivitySelection: {
		ID: ActivitySelection, Name: "Activity selection", Category: CategoryDP,
		Inputs:      []string{"activities"},
		Description: "Greedy interval scheduling by earliest end time.",
		run:         runActivitySelection,
	},
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (Algorithm, bool) {
	a, ok := catalog[id]

	return a, ok
}

// Catalog lists every algorithm, ordered by category then id.
func Catalog() []Algorithm {
	out := make([]Algorithm, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category > out[j].Category
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// String implements fmt.Stringer for log fields.
func (a Algorithm) String() string {
	return fmt.Sprintf("%s (%s)", a.ID, a.Category)
}
