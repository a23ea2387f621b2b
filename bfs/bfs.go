// Package bfs provides breadth-first search over a core.Graph,
// returning hop counts, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/busroute/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, core.ErrOutOfRange for a bad start vertex,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrOutOfRange)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks id reached at depth d with the given parent.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, u)

		next := w.res.Depth[u] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.graph.Neighbors(u)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", u, err)
		}
		for _, h := range nbrs {
			if w.res.Depth[h.To] < 0 {
				w.enqueue(h.To, next, u)
			}
		}
	}
	return nil
}

// Components returns the connected components of g. Each component lists its
// vertices in BFS order; components are ordered by their smallest vertex.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	seen := make([]bool, n)
	var out [][]int
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// Reachable returns, per vertex, whether it can be reached from start.
func Reachable(g *core.Graph, start int) ([]bool, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(res.Depth))
	for v := range out {
		out[v] = res.Reached(v)
	}

	return out, nil
}
