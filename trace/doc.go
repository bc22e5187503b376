// Package trace is the step recorder shared by every algoviz engine.
//
// A Trace is an ordered, append-only list of human-readable events. Each
// engine owns exactly one Trace per invocation and appends to it as the
// algorithm changes state, so replaying the lines in order reconstructs the
// algorithm's decision sequence.
//
// The package also carries the small formatting vocabulary the narration
// uses, so that every engine renders values the same way:
//
//	Value(3.0)                 → "3"
//	Value(math.Inf(1))         → "inf"
//	List([]int{1, 2, 3})       → "[1, 2, 3]"
//	Tuple(0, 1, 2.5)           → "(0, 1, 2.5)"
//	Grid([][]float64{{0, 1}})  → "[[0, 1]]"
//	Indent(2)                  → "    "
//
// Complexity:
//
//   - Record / Recordf: amortized O(1) plus formatting cost.
//   - No deduplication, no size cap, no locking: a Trace belongs to a single
//     call on a single goroutine.
package trace
