// Package dp provides the dynamic-programming and greedy engines of the
// visualizer: 0/1 knapsack with a per-cell trace, activity selection
// (interval scheduling) and a bottom-up Fibonacci helper.
//
// Knapsack
//
//	Fills an (n+1)×(capacity+1) table where dp[i][w] is the best profit
//	using the first i items within capacity w. Each cell is narrated with
//	the branch taken and the two competing values. A traceback from
//	(n, capacity) recovers the chosen items in ascending index order.
//	Time and memory: O(n·capacity).
//
// Activity selection
//
//	Stable-sorts intervals by end time and greedily keeps every interval
//	that starts no earlier than the end of the last kept one. This is
//	optimal for the maximum number of non-overlapping intervals.
//	Time: O(n log n).
//
// Fibonacci
//
//	Bottom-up tabulation in int64; F(92) is the largest representable term.
package dp
