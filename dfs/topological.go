// Package dfs provides the depth-first topological sort over an
// AdjacencyList, narrated step by step.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering: it records
// every vertex in post-order and reverses the result.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/trace"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *AdjacencyList // the graph being sorted
	opts  Options        // traversal options
	state map[string]int // visitation state: White, Gray, Black
	stack []string       // post-order sequence
	steps trace.Trace
}

// TopologicalSort computes a topological ordering of every vertex reachable
// from the declared vertices of g, trying roots in declaration order.
//
// Trace, indented two spaces per recursion level:
//   - "Start DFS from v" for every new root
//   - "Visit v, stack: [...], visited: [...]" on entry (visited is sorted)
//   - "Go deeper from v to n" / "Already visited n" per neighbor
//   - "Push v to stack: [...]" on exit
//   - "Topological order: [...]" once done
//
// Without WithCycleDetection a cyclic graph still yields an order, which is
// then not a valid topological order. With it, the first back-edge aborts the
// run with ErrCycleDetected; the partial result is returned for its trace.
func TopologicalSort(g *AdjacencyList, options ...Option) (*TopoResult, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	s := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, g.Len()),
		stack: make([]string, 0, g.Len()),
	}
	// 4. Drive DFS from every unvisited declared vertex
	for _, v := range g.Vertices() {
		if s.state[v] != White {
			continue
		}
		s.steps.Recordf("Start DFS from %s", v)
		if err := s.visit(v, 0); err != nil {
			return &TopoResult{Steps: s.steps}, err
		}
	}
	// 5. Reverse post-order to produce topological order
	order := make([]string, len(s.stack))
	for i, v := range s.stack {
		order[len(s.stack)-1-i] = v
	}
	s.steps.Recordf("Topological order: %s", trace.List(order))

	return &TopoResult{Order: order, Steps: s.steps}, nil
}

// visit performs a DFS from id at the given recursion depth.
func (s *topoSorter) visit(id string, depth int) error {
	// 1. Cancellation check at entry
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}
	pad := trace.Indent(depth)

	// 2. Mark as in-progress (Gray)
	s.state[id] = Gray
	s.steps.Recordf("%sVisit %s, stack: %s, visited: %s", pad, id, trace.List(s.stack), trace.List(s.visited()))

	// 3. Explore successors in listed order
	for _, n := range s.graph.Neighbors(id) {
		switch s.state[n] {
		case White:
			s.steps.Recordf("%sGo deeper from %s to %s", pad, id, n)
			if err := s.visit(n, depth+1); err != nil {
				return err
			}
		case Gray:
			if s.opts.DetectCycles {
				s.steps.Recordf("%sCycle detected at edge %s -> %s! No topological order.", pad, id, n)

				return fmt.Errorf("%w: back edge %s -> %s", ErrCycleDetected, id, n)
			}
			s.steps.Recordf("%sAlready visited %s", pad, n)
		default:
			s.steps.Recordf("%sAlready visited %s", pad, n)
		}
	}

	// 4. Mark as fully explored (Black) and push in post-order
	s.state[id] = Black
	s.stack = append(s.stack, id)
	s.steps.Recordf("%sPush %s to stack: %s", pad, id, trace.List(s.stack))

	return nil
}

// visited returns every vertex seen so far, sorted.
func (s *topoSorter) visited() []string {
	out := make([]string, 0, len(s.state))
	for v := range s.state {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
