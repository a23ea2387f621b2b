// Package network describes a bus route network: its stops (labels and
// layout positions), its roads as (u, v, weight) triples and the fixed
// destination every route leads to.
//
// A Network is a presentation-side description. Graph() turns it into a
// core.Graph for the routing engine; the graph never sees labels or
// positions.
package network

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/busroute/core"
)

// Sentinel errors for network descriptions.
var (
	// ErrInvalidNetwork indicates a structurally invalid network description.
	ErrInvalidNetwork = errors.New("network: invalid network")

	// ErrUnknownFormat indicates an unsupported file extension or format name.
	ErrUnknownFormat = errors.New("network: unknown format")
)

// Roles of a stop relative to a route request.
const (
	RoleHome        = "home"
	RoleDestination = "destination"
	RoleStop        = "stop"
)

// HomeLabel is the label a layout gives to the chosen source stop.
const HomeLabel = "Home"

// Stop is one vertex of the network with its layout position.
type Stop struct {
	Label string  `json:"label" toml:"label" yaml:"label"`
	X     float64 `json:"x" toml:"x" yaml:"x"`
	Y     float64 `json:"y" toml:"y" yaml:"y"`
}

// Point returns the stop position as an orb.Point.
func (s Stop) Point() orb.Point { return orb.Point{s.X, s.Y} }

// Road is an undirected connection between two stops.
type Road struct {
	From   int   `json:"from" toml:"from" yaml:"from"`
	To     int   `json:"to" toml:"to" yaml:"to"`
	Weight int64 `json:"weight" toml:"weight" yaml:"weight"`
}

// Network is the full description of a route network.
type Network struct {
	Name        string `json:"name" toml:"name" yaml:"name"`
	Destination int    `json:"destination" toml:"destination" yaml:"destination"`
	Stops       []Stop `json:"stops" toml:"stops" yaml:"stops"`
	Roads       []Road `json:"roads" toml:"roads" yaml:"roads"`
}

// Validate checks stop indices, weights and the destination.
// Empty labels are filled by Label, not rejected.
func (n *Network) Validate() error {
	if len(n.Stops) == 0 {
		return fmt.Errorf("%w: no stops", ErrInvalidNetwork)
	}
	if n.Destination < 0 || n.Destination >= len(n.Stops) {
		return fmt.Errorf("%w: destination %d outside [0,%d)", ErrInvalidNetwork, n.Destination, len(n.Stops))
	}
	for i, r := range n.Roads {
		if r.From < 0 || r.From >= len(n.Stops) || r.To < 0 || r.To >= len(n.Stops) {
			return fmt.Errorf("%w: road #%d (%d,%d) references an unknown stop", ErrInvalidNetwork, i, r.From, r.To)
		}
		if r.Weight < 0 {
			return fmt.Errorf("%w: road #%d has negative weight %d", ErrInvalidNetwork, i, r.Weight)
		}
	}

	return nil
}

// Graph validates the network and builds its routing graph. Parallel roads
// between the same pair of stops are rejected.
func (n *Network) Graph() (*core.Graph, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	specs := make([]core.EdgeSpec, len(n.Roads))
	for i, r := range n.Roads {
		specs[i] = core.EdgeSpec{U: r.From, V: r.To, Weight: r.Weight}
	}
	g, err := core.FromEdges(len(n.Stops), specs, core.WithUniqueEdges())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNetwork, err)
	}

	return g, nil
}

// Label returns the display name of stop v: its configured label, or
// "Stop N" (1-based) when none is configured.
func (n *Network) Label(v int) string {
	if v >= 0 && v < len(n.Stops) && n.Stops[v].Label != "" {
		return n.Stops[v].Label
	}
	return fmt.Sprintf("Stop %d", v+1)
}

// Role returns the role of stop v for a route starting at source.
func (n *Network) Role(v, source int) string {
	switch v {
	case source:
		return RoleHome
	case n.Destination:
		return RoleDestination
	default:
		return RoleStop
	}
}

// MapLabel returns the label drawn next to stop v on a map of a route from
// source: the source is HomeLabel, every other stop keeps its Label.
func (n *Network) MapLabel(v, source int) string {
	if v == source {
		return HomeLabel
	}
	return n.Label(v)
}

// Sources lists the stops a route may start from: every stop but the destination.
func (n *Network) Sources() []int {
	out := make([]int, 0, len(n.Stops))
	for v := range n.Stops {
		if v != n.Destination {
			out = append(out, v)
		}
	}
	return out
}

// Lookup resolves a stop by label (exact match) and returns its index.
func (n *Network) Lookup(label string) (int, bool) {
	for v := range n.Stops {
		if n.Label(v) == label {
			return v, true
		}
	}
	return 0, false
}
