package dp

import (
	"errors"

	"github.com/katalvlaran/algoviz/trace"
)

// Sentinel errors.
var (
	// ErrLengthMismatch indicates that weights and profits differ in length.
	ErrLengthMismatch = errors.New("dp: weights and profits must have the same length")

	// ErrNegativeCapacity indicates a knapsack capacity below zero.
	ErrNegativeCapacity = errors.New("dp: capacity must be non-negative")

	// ErrNegativeWeight indicates an item with a weight below zero.
	ErrNegativeWeight = errors.New("dp: item weight must be non-negative")

	// ErrInvalidInterval indicates an interval that ends before it starts
	// or has a NaN bound.
	ErrInvalidInterval = errors.New("dp: interval end precedes start")

	// ErrNegativeN indicates a negative Fibonacci index.
	ErrNegativeN = errors.New("dp: n must be non-negative")

	// ErrOverflow indicates a Fibonacci term that does not fit in int64.
	ErrOverflow = errors.New("dp: result overflows int64")
)

// KnapsackResult is the outcome of Knapsack.
type KnapsackResult struct {
	// Value is the optimal total profit, Table[n][capacity].
	Value int
	// Table is the full (n+1)×(capacity+1) DP table.
	Table [][]int
	// Items are the indices of the chosen items, ascending.
	Items []int
	Steps trace.Trace
}

// Interval is a half-open activity [Start, End).
type Interval struct {
	Start float64
	End   float64
}

// String renders the interval as "(start, end)".
func (iv Interval) String() string {
	return trace.Tuple(iv.Start, iv.End)
}

// ActivityResult is the outcome of ActivitySelection.
type ActivityResult struct {
	Selected []Interval
	Steps    trace.Trace
}
