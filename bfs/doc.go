// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links and visit order, plus connected components.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  hop count per vertex, -1 when not reached
//   - Parent: BFS-tree predecessor per vertex
//   - Components splits the vertex set into connected components.
//
// Why
//
//   - Weighted routing (package dijkstra) reports unreachable vertices only
//     per request. The planner runs Reachable from the destination at start-up
//     to warn about stops that can never reach it, and Components groups the
//     stops into islands for the network description served over HTTP.
//   - Hop counts give the "fewest stops" view of a route network.
//
// Determinism
//
//	core.Neighbors preserves insertion order and BFS enqueues neighbors in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity
//
//	Time O(V + E), Space O(V).
package bfs
