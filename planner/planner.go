// Package planner is the application service behind every busroute front
// end. A Planner owns one network and its routing graph and answers route
// requests with labelled itineraries.
//
// A Planner is immutable after New and safe for concurrent use.
package planner

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/busroute/bfs"
	"github.com/katalvlaran/busroute/core"
	"github.com/katalvlaran/busroute/dijkstra"
	"github.com/katalvlaran/busroute/logging"
	"github.com/katalvlaran/busroute/network"
	"github.com/katalvlaran/busroute/path"
)

// Stop is a labelled vertex inside an itinerary.
type Stop struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Role  string `json:"role"`
}

// Leg is one segment of an itinerary.
type Leg struct {
	From   Stop  `json:"from"`
	To     Stop  `json:"to"`
	Weight int64 `json:"weight"`
}

// Itinerary is a route with display labels attached.
type Itinerary struct {
	Network   string      `json:"network"`
	Source    Stop        `json:"source"`
	Target    Stop        `json:"target"`
	Reachable bool        `json:"reachable"`
	Legs      []Leg       `json:"legs"`
	Total     int64       `json:"total"`
	Route     *path.Route `json:"-"`
}

// OnRoute reports whether the undirected edge {u,v} is one of the legs.
func (it *Itinerary) OnRoute(u, v int) bool {
	for _, l := range it.Legs {
		if (l.From.Index == u && l.To.Index == v) || (l.From.Index == v && l.To.Index == u) {
			return true
		}
	}
	return false
}

// Planner answers route requests over one network.
type Planner struct {
	net      *network.Network
	graph    *core.Graph
	log      logrus.FieldLogger
	stranded []int
	islands  [][]int
}

// New validates net, builds its graph and checks which stops can reach the
// destination. Stops that cannot are logged as warnings and reported by
// Stranded; they are not an error. A nil logger discards output.
func New(net *network.Network, logger *logrus.Logger) (*Planner, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: nil network", network.ErrInvalidNetwork)
	}
	if logger == nil {
		logger = logging.Discard()
	}

	g, err := net.Graph()
	if err != nil {
		return nil, err
	}

	p := &Planner{
		net:   net,
		graph: g,
		log:   logger.WithField("network", net.Name),
	}

	reach, err := bfs.Reachable(g, net.Destination)
	if err != nil {
		return nil, fmt.Errorf("planner: reachability: %w", err)
	}
	for v, ok := range reach {
		if !ok {
			p.stranded = append(p.stranded, v)
			p.log.WithFields(logrus.Fields{
				"stop":  net.Label(v),
				"index": v,
			}).Warn("stop cannot reach the destination")
		}
	}

	if p.islands, err = bfs.Components(g); err != nil {
		return nil, fmt.Errorf("planner: components: %w", err)
	}
	if len(p.islands) > 1 {
		p.log.WithField("components", len(p.islands)).Warn("network is not connected")
	}

	p.log.WithFields(logrus.Fields{
		"stops":       g.VertexCount(),
		"roads":       g.EdgeCount(),
		"destination": net.Label(net.Destination),
	}).Info("network loaded")

	return p, nil
}

// Network returns the network description. Callers must not modify it.
func (p *Planner) Network() *network.Network { return p.net }

// Graph returns the routing graph.
func (p *Planner) Graph() *core.Graph { return p.graph }

// Destination returns the default target stop.
func (p *Planner) Destination() int { return p.net.Destination }

// Stranded lists the stops with no route to the destination.
func (p *Planner) Stranded() []int {
	return append([]int(nil), p.stranded...)
}

// Components returns the connected components of the network, each in BFS
// order, ordered by smallest stop index.
func (p *Planner) Components() [][]int {
	out := make([][]int, len(p.islands))
	for i, c := range p.islands {
		out[i] = append([]int(nil), c...)
	}
	return out
}

// Plan returns the least-cost itinerary from source to the network destination.
// Options are passed to the shortest-path engine.
func (p *Planner) Plan(source int, opts ...dijkstra.Option) (*Itinerary, error) {
	return p.PlanTo(source, p.net.Destination, opts...)
}

// PlanTo returns the least-cost itinerary from source to target.
// An unreachable target, including one beyond dijkstra.WithMaxDistance, yields
// an itinerary with Reachable == false and a nil error.
func (p *Planner) PlanTo(source, target int, opts ...dijkstra.Option) (*Itinerary, error) {
	res, err := p.Distances(source, opts...)
	if err != nil {
		return nil, err
	}

	route, err := path.Build(p.graph, res, target)
	if err != nil {
		return nil, fmt.Errorf("planner: route %d → %d: %w", source, target, err)
	}

	it := &Itinerary{
		Network:   p.net.Name,
		Source:    p.stop(source, source),
		Target:    p.stop(target, source),
		Reachable: route.Reachable,
		Legs:      make([]Leg, 0, len(route.Segments)),
		Total:     route.Total,
		Route:     route,
	}
	for _, s := range route.Segments {
		it.Legs = append(it.Legs, Leg{
			From:   p.stop(s.From, source),
			To:     p.stop(s.To, source),
			Weight: s.Weight,
		})
	}

	fields := logrus.Fields{"source": source, "target": target}
	if it.Reachable {
		fields["total"] = it.Total
		fields["legs"] = len(it.Legs)
		p.log.WithFields(fields).Debug("route planned")
	} else {
		p.log.WithFields(fields).Info("target unreachable")
	}

	return it, nil
}

// Distances runs the shortest-path engine from source.
func (p *Planner) Distances(source int, opts ...dijkstra.Option) (*dijkstra.Result, error) {
	res, err := dijkstra.Dijkstra(p.graph, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	return res, nil
}

// EdgeWeight returns the weight of the road between u and v.
func (p *Planner) EdgeWeight(u, v int) (int64, error) {
	return p.graph.EdgeWeight(u, v)
}

// Stop returns the labelled stop v as seen from a route starting at source.
func (p *Planner) Stop(v, source int) Stop { return p.stop(v, source) }

func (p *Planner) stop(v, source int) Stop {
	return Stop{Index: v, Label: p.net.Label(v), Role: p.net.Role(v, source)}
}
