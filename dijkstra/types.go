// Package dijkstra defines the result type and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable (unset by default).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– core.ErrOutOfRange if the source vertex is outside [0, V).
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

const (
	// Infinity is the internal distance of a vertex that was never reached.
	// It never leaves the package: Distance reports reachability explicitly.
	Infinity int64 = math.MaxInt64

	// MaxDistance is the largest finite distance. Sums that would exceed it
	// saturate here instead of wrapping around or colliding with Infinity.
	MaxDistance int64 = math.MaxInt64 - 1

	// noVertex marks "no predecessor" in the internal table.
	noVertex = -1
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – cap on distances to explore. Must be ≥ 0. Default MaxDistance (no cap).
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
// Zero means no threshold (the default); WithInfEdgeThreshold requires > 0.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64

	err error // first invalid option, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are reported unreachable.
// A negative value makes Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.setErr(ErrBadMaxDistance)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// A zero or negative threshold makes Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.setErr(ErrBadInfThreshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance: MaxDistance,
	}
}

// impassable reports whether an edge of weight w is skipped.
func (o *Options) impassable(w int64) bool {
	return o.InfEdgeThreshold > 0 && w >= o.InfEdgeThreshold
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Entry is one row of the distance/predecessor table.
// Distance is meaningful only when Reachable; Predecessor only when HasPredecessor.
type Entry struct {
	Vertex         int   `json:"vertex"`
	Reachable      bool  `json:"reachable"`
	Distance       int64 `json:"distance"`
	HasPredecessor bool  `json:"has_predecessor"`
	Predecessor    int   `json:"predecessor"`
}

// Result holds the distance and predecessor tables of one Dijkstra run.
// It is owned by the caller and is stale once the source changes.
type Result struct {
	source int
	dist   []int64
	prev   []int
}

// Source returns the vertex the tables were computed from.
func (r *Result) Source() int { return r.source }

// VertexCount returns the number of vertices covered by the tables.
func (r *Result) VertexCount() int { return len(r.dist) }

// Distance returns the least total weight from the source to v.
// ok is false when v is unreachable or not a vertex.
func (r *Result) Distance(v int) (d int64, ok bool) {
	if v < 0 || v >= len(r.dist) || r.dist[v] == Infinity {
		return 0, false
	}
	return r.dist[v], true
}

// Reachable reports whether a path from the source to v exists.
func (r *Result) Reachable(v int) bool {
	_, ok := r.Distance(v)
	return ok
}

// Predecessor returns the vertex preceding v on its shortest path.
// ok is false for the source, for unreachable vertices and for non-vertices.
func (r *Result) Predecessor(v int) (u int, ok bool) {
	if v < 0 || v >= len(r.prev) || r.prev[v] == noVertex {
		return 0, false
	}
	return r.prev[v], true
}

// Table returns the full distance and predecessor tables, one Entry per vertex.
func (r *Result) Table() []Entry {
	out := make([]Entry, len(r.dist))
	for v := range r.dist {
		e := Entry{Vertex: v}
		e.Distance, e.Reachable = r.Distance(v)
		e.Predecessor, e.HasPredecessor = r.Predecessor(v)
		out[v] = e
	}

	return out
}

// Equal reports whether both results have the same source and identical tables.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.source != other.source || len(r.dist) != len(other.dist) {
		return false
	}
	for v := range r.dist {
		if r.dist[v] != other.dist[v] || r.prev[v] != other.prev[v] {
			return false
		}
	}

	return true
}
