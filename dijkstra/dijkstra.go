// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// Notes on implementation choices:
//
//   - The source vertex is an explicit argument; there is no ambient state.
//   - Negative weights cannot exist: core.Graph rejects them on insertion.
//   - We use a "lazy" decrease-key strategy: duplicates are pushed into the heap
//     and stale entries are skipped when popped.
//   - Path sums saturate at MaxDistance instead of overflowing.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/busroute/core"
)

// Dijkstra computes shortest distances and predecessors from source to every
// vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. source must be in [0, V) (core.ErrOutOfRange).
//
// The graph is only read. Each call allocates its own tables, so concurrent
// calls on the same graph are safe.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("dijkstra: source %d: %w", source, core.ErrOutOfRange)
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			source: source,
			dist:   make([]int64, n),
			prev:   make([]int, n),
		},
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	settled []bool // distance of the vertex is final
	pq      nodePQ
}

// init sets every distance to Infinity, every predecessor to none, and seeds
// the heap with (source, 0).
func (r *runner) init() {
	for v := range r.res.dist {
		r.res.dist[v] = Infinity
		r.res.prev[v] = noVertex
	}
	src := r.res.source
	r.res.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process pops the closest frontier entry until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale: superseded by a shorter push, or already finalized
		if r.settled[u] || item.dist > r.res.dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each half-edge of u and improves neighbor distances.
// Assumes r.res.dist[u] is final.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	du := r.res.dist[u]
	for _, e := range neighbors {
		if r.options.impassable(e.Weight) {
			continue
		}

		nd := saturatingAdd(du, e.Weight)
		if nd > r.options.MaxDistance {
			continue
		}
		// strict "<" keeps the first-found predecessor on ties
		if nd >= r.res.dist[e.To] {
			continue
		}

		r.res.dist[e.To] = nd
		r.res.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}

	return nil
}

// saturatingAdd returns a+b for non-negative operands, capped at MaxDistance.
func saturatingAdd(a, b int64) int64 {
	if b > MaxDistance-a {
		return MaxDistance
	}
	return a + b
}

// nodeItem is a frontier entry: a vertex and its tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}
	return pq[i].dist < pq[j].dist
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
