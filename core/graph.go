// File: graph.go
// Role: Graph construction (validation) and read-only queries.
//
// Determinism:
//   - Nodes() follows declaration order.
//   - Edges() and OutgoingEdges() follow construction order.
//
// Concurrency:
//   - No locks: the Graph is never mutated after NewGraph returns.
package core

import "fmt"

// NewGraph validates nodes and edges and returns the resulting Graph.
//
// Steps:
//  1. Every vertex ID must be non-empty and unique.
//  2. Every edge endpoint must be a declared vertex.
//  3. Every edge weight must be ≥ 0.
//
// The first violation is returned as a *ValidationError and no Graph is
// produced. The input slices are copied; later changes by the caller do not
// leak into the Graph.
//
// Complexity: O(V + E).
func NewGraph(nodes []string, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: make([]string, 0, len(nodes)),
		index: make(map[string]int, len(nodes)),
		edges: make([]Edge, 0, len(edges)),
		out:   make([][]Edge, len(nodes)),
	}

	// 1) Vertices
	for _, id := range nodes {
		if id == "" {
			return nil, Invalid(fmt.Sprintf("vertex #%d", len(g.nodes)), ErrEmptyVertexID)
		}
		if _, dup := g.index[id]; dup {
			return nil, Invalid(fmt.Sprintf("vertex %q", id), ErrDuplicateVertex)
		}
		g.index[id] = len(g.nodes)
		g.nodes = append(g.nodes, id)
	}

	// 2) Edges
	for i, e := range edges {
		from, ok := g.index[e.From]
		if !ok {
			return nil, Invalid(fmt.Sprintf("edge #%d %s: source %q", i, e, e.From), ErrVertexNotFound)
		}
		if _, ok = g.index[e.To]; !ok {
			return nil, Invalid(fmt.Sprintf("edge #%d %s: target %q", i, e, e.To), ErrVertexNotFound)
		}
		if e.Weight < 0 {
			return nil, Invalid(fmt.Sprintf("edge #%d %s", i, e), ErrNegativeWeight)
		}
		g.edges = append(g.edges, e)
		g.out[from] = append(g.out[from], e)
	}

	return g, nil
}

// Nodes returns the vertex IDs in declaration order.
func (g *Graph) Nodes() []string {
	ids := make([]string, len(g.nodes))
	copy(ids, g.nodes)

	return ids
}

// Edges returns every edge in construction order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return edges
}

// OutgoingEdges returns the edges whose source is id, in the order they were
// supplied to NewGraph. Unknown IDs yield an empty slice.
func (g *Graph) OutgoingEdges(id string) []Edge {
	i, ok := g.index[id]
	if !ok {
		return []Edge{}
	}
	edges := make([]Edge, len(g.out[i]))
	copy(edges, g.out[i])

	return edges
}

// outgoing is the allocation-free variant used by hot loops inside the module.
// Callers must not modify the returned slice.
func (g *Graph) outgoing(i int) []Edge { return g.out[i] }

// EachOutgoing calls fn for every edge leaving id, in construction order,
// without copying the adjacency list. Iteration stops early if fn returns false.
func (g *Graph) EachOutgoing(id string, fn func(Edge) bool) {
	i, ok := g.index[id]
	if !ok {
		return
	}
	for _, e := range g.outgoing(i) {
		if !fn(e) {
			return
		}
	}
}

// HasVertex reports whether id was declared.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Index returns the dense position of id in Nodes().
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Node returns the vertex ID stored at dense index i.
// It panics if i is out of range, like a slice access.
func (g *Graph) Node(i int) string { return g.nodes[i] }

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }
