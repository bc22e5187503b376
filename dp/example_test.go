package dp_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/dp"
)

func ExampleKnapsack() {
	res, err := dp.Knapsack([]int{2, 3, 4, 5}, []int{3, 4, 5, 6}, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Value, res.Items)
	// Output: 7 [0 1]
}

func ExampleActivitySelection() {
	res, _ := dp.ActivitySelection([]dp.Interval{{1, 3}, {2, 4}, {3, 5}, {0, 6}, {5, 7}, {8, 9}})
	fmt.Println(res.Selected)
	// Output: [(1, 3) (3, 5) (5, 7) (8, 9)]
}
