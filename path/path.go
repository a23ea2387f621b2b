// Package path turns a predecessor table into a concrete route.
//
// Reconstruct returns the vertex order source→target. Build additionally
// looks up every segment weight in the graph and returns a Route with the
// total cost.
//
// Unreachable targets are a normal outcome: Reconstruct returns [target] and
// Build returns a Route with Reachable == false. A one-element route whose
// target is the source is reachable with cost 0.
package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/busroute/core"
	"github.com/katalvlaran/busroute/dijkstra"
)

// Sentinel errors for route reconstruction.
var (
	// ErrUnreachable reports that no route from the source to the target exists.
	// It is informational: Build does not return it, Route.Err does.
	ErrUnreachable = errors.New("path: target unreachable from source")

	// ErrCorruptTable indicates a predecessor chain that loops or leaves the vertex range.
	ErrCorruptTable = errors.New("path: corrupt predecessor table")

	// ErrNilResult indicates a nil graph or nil shortest-path result.
	ErrNilResult = errors.New("path: nil graph or result")
)

// Predecessors is the read side of a predecessor table.
// *dijkstra.Result implements it.
type Predecessors interface {
	VertexCount() int
	Predecessor(v int) (int, bool)
}

// Segment is one hop of a route with the weight of the connecting edge.
type Segment struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
}

// Route is a reconstructed least-cost route from Source to Target.
type Route struct {
	Source    int       `json:"source"`
	Target    int       `json:"target"`
	Reachable bool      `json:"reachable"`
	Vertices  []int     `json:"vertices"`
	Segments  []Segment `json:"segments"`
	Total     int64     `json:"total"`
}

// Unreachable reports whether the route has no valid path.
func (r *Route) Unreachable() bool { return !r.Reachable }

// Err returns ErrUnreachable for an unreachable route and nil otherwise.
func (r *Route) Err() error {
	if r.Reachable {
		return nil
	}
	return fmt.Errorf("%w: %d → %d", ErrUnreachable, r.Source, r.Target)
}

// Reconstruct walks predecessor links back from target until a vertex with
// no predecessor, then reverses the walk so the result runs source→target.
//
// A walk longer than VertexCount() steps means the table contains a cycle
// and yields ErrCorruptTable.
// Complexity: O(length of the route).
func Reconstruct(prev Predecessors, target int) ([]int, error) {
	if prev == nil {
		return nil, ErrNilResult
	}
	n := prev.VertexCount()
	if target < 0 || target >= n {
		return nil, fmt.Errorf("path: target %d: %w", target, core.ErrOutOfRange)
	}

	out := []int{target}
	for cur := target; ; {
		p, ok := prev.Predecessor(cur)
		if !ok {
			break
		}
		if p < 0 || p >= n || len(out) >= n {
			return nil, fmt.Errorf("%w: at vertex %d", ErrCorruptTable, cur)
		}
		out = append(out, p)
		cur = p
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// Build reconstructs the route from res.Source() to target and attaches the
// weight of every segment.
//
// Between two stops joined by parallel roads the segment carries the
// cheapest one, which is the road Dijkstra relaxed through. core.EdgeWeight
// would report the first inserted road instead. For a reachable target, Total
// equals the target's distance and, short of saturation, the segment sum.
func Build(g *core.Graph, res *dijkstra.Result, target int) (*Route, error) {
	if g == nil || res == nil {
		return nil, ErrNilResult
	}

	vertices, err := Reconstruct(res, target)
	if err != nil {
		return nil, err
	}

	route := &Route{
		Source:    res.Source(),
		Target:    target,
		Reachable: res.Reachable(target),
		Vertices:  vertices,
		Segments:  make([]Segment, 0, len(vertices)-1),
	}
	if !route.Reachable {
		return route, nil
	}
	if vertices[0] != route.Source {
		return nil, fmt.Errorf("%w: route to %d starts at %d, not %d", ErrCorruptTable, target, vertices[0], route.Source)
	}

	for i := 0; i+1 < len(vertices); i++ {
		u, v := vertices[i], vertices[i+1]
		w, err := segmentWeight(g, u, v)
		if err != nil {
			return nil, fmt.Errorf("path: segment %d→%d: %w", u, v, err)
		}
		route.Segments = append(route.Segments, Segment{From: u, To: v, Weight: w})
	}
	route.Total, _ = res.Distance(target)

	return route, nil
}

// segmentWeight returns the lightest edge between u and v.
func segmentWeight(g *core.Graph, u, v int) (int64, error) {
	nbrs, err := g.Neighbors(u)
	if err != nil {
		return 0, err
	}

	w, found := int64(0), false
	for _, h := range nbrs {
		if h.To == v && (!found || h.Weight < w) {
			w, found = h.Weight, true
		}
	}
	if !found {
		return 0, core.ErrEdgeNotFound
	}

	return w, nil
}
