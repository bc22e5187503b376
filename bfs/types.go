// Package bfs provides tunable options, result types and error definitions
// for Kahn's breadth-first topological sort over an adjacency matrix.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/algoviz/trace"
)

// Sentinel errors for Kahn's algorithm.
var (
	// ErrCycleDetected is returned when the graph contains a directed cycle,
	// so no topological order exists. The result is still returned with its trace.
	ErrCycleDetected = errors.New("bfs: cycle detected, no topological order")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Kahn's algorithm via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when TopologicalSort is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnDequeue is called when a vertex is removed from the queue and
	// appended to the order.
	OnDequeue func(v int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnDequeue: func(int) {},
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Ctx = ctx
	}
}

// WithOnDequeue registers a hook invoked for every vertex in output order.
func WithOnDequeue(fn func(v int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrOptionViolation
			return
		}
		o.OnDequeue = fn
	}
}

// KahnResult holds the outcome of a topological sort.
//
// Order is nil when Cycle is true. Indegrees holds the initial in-degree of
// every vertex.
type KahnResult struct {
	Order     []int
	Indegrees []int
	Cycle     bool
	Steps     trace.Trace
}
