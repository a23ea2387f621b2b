// File: methods_adjacent.go
// Role: Vertex-level queries: Neighbors, Degree, HasVertex, VertexCount.
// Determinism:
//   - Neighbors preserves insertion order of the vertex's adjacency list.

package core

import "fmt"

// Neighbors returns a copy of u's incident half-edges in insertion order.
// The slice is owned by the caller; modifying it does not affect the graph.
// Returns ErrOutOfRange when u is outside [0, V).
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]HalfEdge, error) {
	if !g.inRange(u) {
		return nil, fmt.Errorf("%w: vertex %d with %d vertices", ErrOutOfRange, u, g.n)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]HalfEdge, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// Degree returns the number of adjacency entries of u. A self-loop counts twice.
func (g *Graph) Degree(u int) (int, error) {
	if !g.inRange(u) {
		return 0, fmt.Errorf("%w: vertex %d with %d vertices", ErrOutOfRange, u, g.n)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u]), nil
}

// VertexCount returns V. It never changes after construction.
func (g *Graph) VertexCount() int { return g.n }

// HasVertex reports whether v is a vertex of g, i.e. 0 <= v < V.
func (g *Graph) HasVertex(v int) bool { return g.inRange(v) }

func (g *Graph) inRange(v int) bool { return v >= 0 && v < g.n }
