// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// on core.Graph values with non-negative integer weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from one source vertex to every
//     reachable vertex in O((V + E) log V) time.
//   - It relies on a min-heap to always expand the next-closest vertex.
//   - It records, per vertex, the predecessor on a least-cost route, so the
//     route to any target can be rebuilt (see package path).
//
// Frontier:
//
//   - Entries are (vertex, tentative distance) pairs.
//   - On improvement a new entry is pushed; the old one is left in place.
//   - A popped entry whose distance is larger than the best known one, or
//     whose vertex is already settled, is skipped. No decrease-key needed.
//
// Results:
//
//	res, err := dijkstra.Dijkstra(g, source)
//	d, ok := res.Distance(v)     // ok == false: v is unreachable
//	p, ok := res.Predecessor(v)  // ok == false: v is the source or unreachable
//	rows := res.Table()          // full tables for presentation layers
//
// Unreachability is a normal outcome, not an error. Distances are never
// reported as a magic maximum value.
//
// Numeric semantics:
//
//   - Weights are non-negative int64 values (core rejects negatives).
//   - Sums saturate at MaxDistance; they never wrap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - core.ErrOutOfRange: source outside [0, V), wrapped with the source value.
//   - ErrBadMaxDistance:  WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: WithInfEdgeThreshold with a zero or negative value.
//
// Thread safety:
//
//   - Dijkstra only reads the graph and allocates its own tables, so many
//     goroutines may run it against the same graph.
package dijkstra
