// Package prim_kruskal defines configuration options, result types and
// sentinel errors for MST computation on adjacency matrices.
// It supports selecting between Kruskal and Prim algorithms via Options.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/algoviz/matrix"
	"github.com/katalvlaran/algoviz/trace"
)

// ErrUnknownMethod indicates that Compute was asked for a method other than
// MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Only returned when
// WithRequireConnected is set; otherwise Prim spans the component of vertex 0
// and Kruskal returns a spanning forest.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from vertex 0 using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is one undirected MST edge between vertex indices From and To.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// String renders the edge as "(from, to, weight)".
func (e Edge) String() string {
	return trace.Tuple(e.From, e.To, e.Weight)
}

// Result is the outcome of an MST run.
//
// Edges are listed in the order they were added, Total is their weight sum.
type Result struct {
	Edges []Edge
	Total float64
	Steps trace.Trace
}

// Options configures which MST algorithm Compute runs and whether a
// spanning forest is acceptable.
//
// Fields:
//
//	Method             one of MethodPrim or MethodKruskal (Compute only).
//	RequireConnected   fail with ErrDisconnected unless n-1 edges are found.
type Options struct {
	Method           string
	RequireConnected bool
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method used by Compute.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRequireConnected makes Prim and Kruskal reject graphs whose MST would
// have fewer than n-1 edges.
func WithRequireConnected() Option {
	return func(o *Options) {
		o.RequireConnected = true
	}
}

// DefaultOptions returns Options initialized for Kruskal, lenient on
// disconnected graphs.
func DefaultOptions() Options {
	return Options{
		Method:           MethodKruskal,
		RequireConnected: false,
	}
}

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal: calls Kruskal(m, opts...).
//	– MethodPrim:    calls Prim(m, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(m *matrix.Dense, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(m, opts...)
	case MethodPrim:
		return Prim(m, opts...)
	default:
		return nil, ErrUnknownMethod
	}
}
