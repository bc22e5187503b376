package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/matrix"
)

// ExampleDijkstra computes shortest paths on an undirected triangle where the
// detour through vertex 1 beats the direct edge 0–2.
func ExampleDijkstra() {
	m, _ := matrix.NewFromRows([][]float64{
		{0, 1, 5},
		{1, 0, 2},
		{5, 2, 0},
	})

	res, err := dijkstra.Dijkstra(m, dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Distances)
	fmt.Println(res.Paths)
	// Output:
	// [0 1 3]
	// [[0] [0 1] [0 1 2]]
}
