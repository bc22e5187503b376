// Package dijkstra defines core types and configuration options
// for the traced Dijkstra shortest-path engine on adjacency matrices.
//
// Options:
//
//	– Source:           index of the starting vertex (0 by default).
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrSourceOutOfRange if the source index is not a vertex of the matrix.
//	– ErrNegativeWeight   if a negative edge weight is detected in the matrix.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/algoviz/trace"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrSourceOutOfRange indicates that the source index is not in [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex index.
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default is +Inf (only the 0 / +Inf sentinels are skipped).
type Options struct {
	Source           int     // index of the source vertex
	InfEdgeThreshold float64 // weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(i int) Option {
	return func(o *Options) {
		o.Source = i
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable.
// Must pass a positive value; zero, negative or NaN values panic with
// ErrBadInfThreshold when the option is applied.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			// Invalid configuration is a programmer error; fail early.
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with Source 0 and no extra impassable threshold.
func DefaultOptions() Options {
	return Options{
		Source:           0,
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result is the outcome of a Dijkstra run.
//
// Distances[v] is the shortest distance from the source, +Inf if unreachable.
// Prev[v] is v's predecessor on one shortest path, -1 for the source and for
// unreachable vertices. Paths holds, in vertex order, the path source→…→v of
// every reachable vertex v; unreachable vertices have no entry.
type Result struct {
	Distances []float64
	Prev      []int
	Paths     [][]int
	Steps     trace.Trace
}
