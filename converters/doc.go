// Package converters provides adapters from algoviz inputs to gonum/graph
// (gonum.org/v1/gonum/graph/simple) and oracle checks built on gonum's own
// path and topo packages.
//
// Matrices follow the engine conventions: a cell that is neither 0 nor +Inf
// is an edge. gonum's simple graphs cannot hold self-loops, so diagonal
// cells are skipped by every converter.
//
// The Check* functions compare an engine's answer with the one gonum
// computes independently and return ErrMismatch when they disagree.
package converters
