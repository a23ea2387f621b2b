// Package core provides a small, thread-safe, undirected weighted Graph over
// integer vertices [0, V).
//
// The Graph G = (V, E) is built once and then read:
//
//   - V is fixed by NewGraph(vertexCount) and never changes.
//   - AddEdge(u, v, w) stores {v, w} in u's list and {u, w} in v's list,
//     in that order, so both directions carry the same weight.
//   - Adjacency lists keep insertion order; Neighbors returns a copy.
//   - Parallel edges are kept unless WithUniqueEdges() is given; EdgeWeight
//     then reports the first inserted edge.
//   - Self-loops are allowed.
//   - Weights are non-negative int64 values; a negative weight is rejected
//     with ErrInvalidWeight.
//
// Absence is explicit: EdgeWeight returns ErrEdgeNotFound instead of a
// sentinel weight, so "no edge" can never be mistaken for a zero-cost edge.
//
// Core Methods:
//
//	NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) // O(V)
//	FromEdges(vertexCount int, specs []EdgeSpec, opts ...GraphOption) (*Graph, error)
//	AddEdge(u, v int, weight int64) (edgeID int, err error)        // O(1)
//	EdgeWeight(u, v int) (int64, error)                            // O(deg(u))
//	HasEdge(u, v int) bool
//	Neighbors(u int) ([]HalfEdge, error)                           // O(deg(u))
//	Degree(u int) (int, error)
//	Edges() []Edge                                                 // O(E)
//	VertexCount() int
//	EdgeCount() int
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency lists and the edge catalog.
//	Queries share the read lock, AddEdge takes the write lock, so a built
//	graph may be read by any number of goroutines.
//
// Example:
//
//	g, _ := core.NewGraph(3)
//	g.AddEdge(0, 1, 4)
//	g.AddEdge(1, 2, 6)
//	w, err := g.EdgeWeight(2, 1) // 6, nil
package core
