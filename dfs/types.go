// Package dfs defines types and options for the depth-first topological
// sort, including cancellation and optional cycle detection.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/algoviz/trace"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *AdjacencyList is passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a back-edge was found while cycle
	// detection was enabled.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of TopologicalSort.
type Option func(*Options)

// Options holds configurable parameters for the traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// DetectCycles, if true, aborts on the first back-edge with
	// ErrCycleDetected. Otherwise a back-edge is narrated like any other
	// visited neighbor and the returned order is best effort.
	DetectCycles bool
}

// DefaultOptions returns Options with a background context and cycle
// detection disabled.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		DetectCycles: false,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCycleDetection returns an Option that makes TopologicalSort fail with
// ErrCycleDetected on the first back-edge.
func WithCycleDetection() Option {
	return func(o *Options) {
		o.DetectCycles = true
	}
}

// TopoResult holds the order produced by TopologicalSort and its narration.
type TopoResult struct {
	Order []string
	Steps trace.Trace
}
