// Package core defines the undirected weighted Graph over integer vertices,
// its Edge and HalfEdge records, sentinel errors and the NewGraph constructor.
//
// Vertices are the integers [0, V). V is fixed at construction time.
// The only mutation is AddEdge; there is no removal.
//
// Errors:
//
//	ErrInvalidSize    - negative vertex count passed to NewGraph.
//	ErrOutOfRange     - a vertex index outside [0, V).
//	ErrInvalidWeight  - a negative edge weight.
//	ErrEdgeNotFound   - no edge connects the requested pair.
//	ErrDuplicateEdge  - parallel edge when WithUniqueEdges is set.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates that a graph was requested with a negative vertex count.
	ErrInvalidSize = errors.New("core: invalid vertex count")

	// ErrOutOfRange indicates an operation referenced a vertex outside [0, V).
	ErrOutOfRange = errors.New("core: vertex index out of range")

	// ErrInvalidWeight indicates a negative edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrEdgeNotFound indicates that no edge connects the requested vertices.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates a parallel edge was attempted when unique edges are enforced.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Edge is one undirected connection {From, To} with a non-negative Weight.
//
// ID is the zero-based insertion sequence of the edge in its Graph, so
// Edges() and the per-vertex adjacency lists agree on what "first inserted" means.
type Edge struct {
	ID     int
	From   int
	To     int
	Weight int64
}

// HalfEdge is an adjacency entry: the vertex reached from the owner of the
// list, the weight of the connection and the ID of the underlying Edge.
type HalfEdge struct {
	To     int
	Weight int64
	EdgeID int
}

// EdgeSpec is an edge description as a (U, V, Weight) triple, used by FromEdges.
type EdgeSpec struct {
	U      int
	V      int
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUniqueEdges rejects a second edge between the same unordered pair of
// vertices with ErrDuplicateEdge. Without it, parallel edges are stored and
// EdgeWeight reports the first one inserted.
func WithUniqueEdges() GraphOption {
	return func(g *Graph) { g.unique = true }
}

// Graph is an undirected, weighted graph with a fixed vertex set.
//
// adjacency[u] lists the half-edges leaving u in insertion order; edges is
// the catalog of inserted edges in insertion order. mu guards both.
type Graph struct {
	mu sync.RWMutex

	n      int  // vertex count, immutable
	unique bool // reject parallel edges

	adjacency [][]HalfEdge
	edges     []Edge
}

// NewGraph creates a graph with vertexCount isolated vertices and no edges.
// Returns ErrInvalidSize if vertexCount < 0.
// Complexity: O(V).
func NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrInvalidSize
	}
	g := &Graph{
		n:         vertexCount,
		adjacency: make([][]HalfEdge, vertexCount),
		edges:     make([]Edge, 0, vertexCount),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
