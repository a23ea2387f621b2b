// File: methods_edges.go
// Role: Edge insertion and queries: AddEdge, FromEdges, EdgeWeight, HasEdge, Edges.
// Determinism:
//   - Edges() returns edges in insertion order (Edge.ID asc).
//   - EdgeWeight resolves parallel edges to the first one inserted.
// Concurrency:
//   - AddEdge under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge inserts the undirected edge {u, v} with the given weight and
// returns its ID.
//
// Steps:
//  1. Validate u and v against [0, V) (ErrOutOfRange).
//  2. Validate weight >= 0 (ErrInvalidWeight).
//  3. Under the write lock, reject parallel edges if WithUniqueEdges is set.
//  4. Append {v, w} to u's list, then {u, w} to v's list.
//
// A self-loop (u == v) is permitted and appends two entries to u's list.
// On error the graph is left untouched.
// Complexity: O(1) amortized, O(deg(u)) with WithUniqueEdges.
func (g *Graph) AddEdge(u, v int, weight int64) (int, error) {
	if !g.inRange(u) || !g.inRange(v) {
		return 0, fmt.Errorf("%w: edge (%d,%d) with %d vertices", ErrOutOfRange, u, v, g.n)
	}
	if weight < 0 {
		return 0, fmt.Errorf("%w: edge (%d,%d) weight=%d", ErrInvalidWeight, u, v, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.unique && firstHalfEdge(g.adjacency[u], v) >= 0 {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, u, v)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Weight: weight})
	g.adjacency[u] = append(g.adjacency[u], HalfEdge{To: v, Weight: weight, EdgeID: id})
	g.adjacency[v] = append(g.adjacency[v], HalfEdge{To: u, Weight: weight, EdgeID: id})

	return id, nil
}

// FromEdges builds a graph with vertexCount vertices and inserts the given
// triples in order. The first invalid triple aborts construction and its
// index is reported in the wrapped error.
func FromEdges(vertexCount int, specs []EdgeSpec, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(vertexCount, opts...)
	if err != nil {
		return nil, err
	}
	for i, s := range specs {
		if _, err = g.AddEdge(s.U, s.V, s.Weight); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// EdgeWeight returns the weight of the edge directly connecting u and v.
// Parallel edges resolve to the first one inserted. Returns ErrEdgeNotFound
// when u and v are not adjacent, ErrOutOfRange for bad indices.
// Complexity: O(deg(u)).
func (g *Graph) EdgeWeight(u, v int) (int64, error) {
	if !g.inRange(u) || !g.inRange(v) {
		return 0, fmt.Errorf("%w: (%d,%d) with %d vertices", ErrOutOfRange, u, v, g.n)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adjacency[u]
	i := firstHalfEdge(list, v)
	if i < 0 {
		return 0, ErrEdgeNotFound
	}

	return list[i].Weight, nil
}

// HasEdge reports whether at least one edge connects u and v.
// Out-of-range indices report false.
func (g *Graph) HasEdge(u, v int) bool {
	_, err := g.EdgeWeight(u, v)
	return err == nil
}

// Edges returns a copy of every inserted edge, each once, in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of inserted edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// firstHalfEdge returns the index of the first entry in list pointing at v, or -1.
func firstHalfEdge(list []HalfEdge, v int) int {
	for i := range list {
		if list[i].To == v {
			return i
		}
	}
	return -1
}
