package visualizer_test

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/algoviz/visualizer"
)

func ExampleRun() {
	body := []byte(`{"matrix": [[0, 1, null], [1, 0, 2], [null, 2, 0]], "source": 0}`)

	out, err := visualizer.Run(context.Background(), visualizer.Dijkstra, body)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	raw, _ := json.Marshal(out.Distances)
	fmt.Println(string(raw))
	fmt.Println(out.Steps[len(out.Steps)-1])
	// Output:
	// [0,1,3]
	// Paths: [[0], [0, 1], [0, 1, 2]]
}
