package dfs

// AdjacencyList is a directed graph keyed by vertex name that remembers the
// order in which vertices were declared. Traversal roots are tried in that
// order, and neighbors in the order they were listed.
type AdjacencyList struct {
	order []string
	adj   map[string][]string
}

// NewAdjacencyList returns an empty graph.
func NewAdjacencyList() *AdjacencyList {
	return &AdjacencyList{adj: make(map[string][]string)}
}

// Add declares v (if new) and appends neighbors to its successor list.
// Neighbors need not be declared themselves; undeclared ones are still
// reached through edges but are never traversal roots.
func (g *AdjacencyList) Add(v string, neighbors ...string) {
	if _, ok := g.adj[v]; !ok {
		g.order = append(g.order, v)
		g.adj[v] = make([]string, 0, len(neighbors))
	}
	g.adj[v] = append(g.adj[v], neighbors...)
}

// Vertices returns the declared vertices in declaration order.
func (g *AdjacencyList) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns v's successors in listed order; nil if v is undeclared.
func (g *AdjacencyList) Neighbors(v string) []string {
	return g.adj[v]
}

// HasVertex reports whether v was declared.
func (g *AdjacencyList) HasVertex(v string) bool {
	_, ok := g.adj[v]

	return ok
}

// Len returns the number of declared vertices.
func (g *AdjacencyList) Len() int { return len(g.order) }
