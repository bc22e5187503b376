// Package visualizer maps an algorithm id and a JSON request body to a
// traced result. It is the single entry point shared by the HTTP API and
// the command-line runner.
//
// Run decodes the body with jsonparser, validates every field the chosen
// algorithm needs (collecting all violations, not just the first), invokes
// the engine and shapes the result as an *Output whose JSON form mirrors
// the historical endpoints: result, steps, tree, matrices, matrix, items,
// edges, total, distances, paths. Infinite distances are encoded as null.
//
// Errors fall into four classes, matched with errors.Is:
//
//	ErrUnknownAlgorithm  the id is not in the catalog
//	ErrInvalidInput      the body is malformed; the engine was not run
//	ErrUnsolvable        the input is valid but has no answer (a cycle for
//	                     a topological sort); the trace is still returned
//	ErrInternal          anything else, including recovered panics
//
// Verify reruns a graph algorithm and compares its answer with gonum's
// implementation through package converters.
package visualizer
