// Package layout exports a network and a planned route as a GeoJSON feature
// collection for map front ends.
//
// Coordinates are the stop positions of the network description in canvas
// units, not longitude/latitude.
package layout

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/busroute/core"
	"github.com/katalvlaran/busroute/network"
	"github.com/katalvlaran/busroute/planner"
)

// Feature kinds, stored in the "kind" property.
const (
	KindStop  = "stop"
	KindRoad  = "road"
	KindRoute = "route"
)

// Build returns one Point per stop, one LineString per road and, for a
// reachable itinerary with at least one leg, a LineString tracing the route.
//
// Stop properties: kind, index, label, map_label, role.
// Road properties: kind, from, to, weight, on_route.
// Route properties: kind, source, target, total.
//
// A nil itinerary exports the network alone; no stop is Home and no road is
// on the route.
func Build(net *network.Network, g *core.Graph, it *planner.Itinerary) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	source := -1
	if it != nil {
		source = it.Source.Index
	}

	points := make(orb.MultiPoint, 0, len(net.Stops))
	for v, s := range net.Stops {
		pt := s.Point()
		points = append(points, pt)

		f := geojson.NewFeature(pt)
		f.Properties["kind"] = KindStop
		f.Properties["index"] = v
		f.Properties["label"] = net.Label(v)
		f.Properties["map_label"] = net.MapLabel(v, source)
		if it != nil {
			f.Properties["role"] = net.Role(v, source)
		} else if v == net.Destination {
			f.Properties["role"] = network.RoleDestination
		} else {
			f.Properties["role"] = network.RoleStop
		}
		fc.Append(f)
	}

	for _, e := range g.Edges() {
		f := geojson.NewFeature(orb.LineString{net.Stops[e.From].Point(), net.Stops[e.To].Point()})
		f.Properties["kind"] = KindRoad
		f.Properties["from"] = e.From
		f.Properties["to"] = e.To
		f.Properties["weight"] = e.Weight
		f.Properties["on_route"] = it != nil && it.Reachable && it.OnRoute(e.From, e.To)
		fc.Append(f)
	}

	if it != nil && it.Reachable && len(it.Legs) > 0 {
		line := make(orb.LineString, 0, len(it.Route.Vertices))
		for _, v := range it.Route.Vertices {
			line = append(line, net.Stops[v].Point())
		}
		f := geojson.NewFeature(line)
		f.Properties["kind"] = KindRoute
		f.Properties["source"] = it.Source.Index
		f.Properties["target"] = it.Target.Index
		f.Properties["total"] = it.Total
		fc.Append(f)
	}

	if len(points) > 0 {
		fc.BBox = geojson.NewBBox(points.Bound())
	}

	return fc
}

// Plan runs p for source and exports the network with the resulting route.
func Plan(p *planner.Planner, source int) (*geojson.FeatureCollection, error) {
	it, err := p.Plan(source)
	if err != nil {
		return nil, err
	}
	return Build(p.Network(), p.Graph(), it), nil
}
