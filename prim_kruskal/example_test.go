package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/matrix"
	"github.com/katalvlaran/algoviz/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle graph.
// The MST is {0–1, 1–2} with total weight 3.
func ExampleKruskal() {
	m, _ := matrix.NewFromRows([][]float64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	})

	res, err := prim_kruskal.Kruskal(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, line := range res.Steps {
		fmt.Println(line)
	}
	// Output:
	// Add edge (0, 1) with cost 1
	// Add edge (1, 2) with cost 2
	// MST edges: [(0, 1, 1), (1, 2, 2)], total cost: 3
}

// ExamplePrim grows the same tree from vertex 0.
func ExamplePrim() {
	m, _ := matrix.NewFromRows([][]float64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	})

	res, _ := prim_kruskal.Prim(m)
	fmt.Println(res.Edges, res.Total)
	// Output:
	// [(0, 1, 1) (1, 2, 2)] 3
}
