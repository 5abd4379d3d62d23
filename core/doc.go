// Package core provides the immutable, validated Graph model consumed by the
// incremental Dijkstra stepper.
//
// The Graph G = (V,E) is deliberately small in scope:
//
//   - Vertices are opaque, non-empty string IDs, fixed at construction.
//   - Edges are directed and weighted: From → To with an int64 Weight ≥ 0.
//     An undirected road is modelled as two edges (see BothWays).
//   - Every vertex receives a dense index in declaration order, so algorithms
//     can keep per-vertex state in slices instead of maps.
//
// Why an immutable Graph?
//
//   - A stepper may be reset and rerun many times; the topology it walks must
//     not drift between runs.
//   - Several independent steppers can share one *Graph without locking.
//
// Construction:
//
//	g, err := core.NewGraph(
//	    []string{"A", "B", "C", "D"},
//	    []core.Edge{
//	        {From: "A", To: "B", Weight: 4},
//	        {From: "A", To: "D", Weight: 2},
//	        {From: "D", To: "B", Weight: 1},
//	        {From: "B", To: "C", Weight: 3},
//	        {From: "D", To: "C", Weight: 7},
//	    },
//	)
//
// Queries:
//
//	Nodes() []string                  // declaration order
//	Edges() []Edge                    // construction order
//	OutgoingEdges(id string) []Edge   // construction order, empty for unknown ids
//	HasVertex(id string) bool         // O(1)
//	Index(id string) (int, bool)      // dense index, O(1)
//	Order() int                       // |V|
//	Size() int                        // |E|
//
// Errors:
//
//	ErrEmptyVertexID    – zero-length vertex ID
//	ErrDuplicateVertex  – vertex declared twice
//	ErrVertexNotFound   – edge endpoint not declared
//	ErrNegativeWeight   – edge weight below zero
//
// NewGraph reports all of them wrapped in a *ValidationError naming the
// offending vertex or edge.
package core
