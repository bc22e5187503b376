package dp

import (
	"fmt"

	"github.com/katalvlaran/algoviz/trace"
)

// Knapsack solves the 0/1 knapsack problem for the given item weights and
// profits under capacity.
//
// Every table cell is narrated as one of:
//
//	dp[i][w] = v (Include item k: profit=p, weight=q; compare e (exclude) vs c (include))
//	dp[i][w] = v (Exclude item k: ...)
//	dp[i][w] = v (Cannot include item k: weight=q > capacity w; carry over e)
//
// followed by "Selected items: [...]". Ties between including and excluding
// keep the item out.
func Knapsack(weights, profits []int, capacity int) (*KnapsackResult, error) {
	// 1. Validate.
	if len(weights) != len(profits) {
		return nil, fmt.Errorf("%w: %d weights, %d profits", ErrLengthMismatch, len(weights), len(profits))
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: item %d weight=%d", ErrNegativeWeight, i, w)
		}
	}

	// 2. Allocate the (n+1)×(W+1) table; row 0 stays zero.
	n := len(weights)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, capacity+1)
	}
	res := &KnapsackResult{Table: table}

	// 3. Forward fill.
	for i := 1; i <= n; i++ {
		wt, pr := weights[i-1], profits[i-1]
		for w := 0; w <= capacity; w++ {
			exclude := table[i-1][w]
			if wt > w {
				table[i][w] = exclude
				res.Steps.Recordf("dp[%d][%d] = %d (Cannot include item %d: weight=%d > capacity %d; carry over %d)",
					i, w, exclude, i-1, wt, w, exclude)
				continue
			}
			include := pr + table[i-1][w-wt]
			verb := "Exclude"
			table[i][w] = exclude
			if include > exclude {
				verb = "Include"
				table[i][w] = include
			}
			res.Steps.Recordf("dp[%d][%d] = %d (%s item %d: profit=%d, weight=%d; compare %d (exclude) vs %d (include))",
				i, w, table[i][w], verb, i-1, pr, wt, exclude, include)
		}
	}

	// 4. Traceback from (n, capacity).
	w := capacity
	for i := n; i > 0; i-- {
		if table[i][w] != table[i-1][w] {
			res.Items = append(res.Items, i-1)
			w -= weights[i-1]
		}
	}
	for l, r := 0, len(res.Items)-1; l < r; l, r = l+1, r-1 {
		res.Items[l], res.Items[r] = res.Items[r], res.Items[l]
	}
	if res.Items == nil {
		res.Items = []int{}
	}
	res.Value = table[n][capacity]
	res.Steps.Recordf("Selected items: %s", trace.List(res.Items))

	return res, nil
}
