// Package busroute plans least-cost routes through a small bus network: from
// a chosen home stop to a fixed destination such as a college.
//
// The routing core has no I/O and no dependencies outside the standard
// library:
//
//	core/     undirected weighted graph over int vertices [0,V)
//	dijkstra/ single-source shortest paths (binary heap, lazy decrease-key)
//	path/     predecessor walk and per-segment route reconstruction
//	bfs/      reachability and connected components
//
// Around it sit the application layers:
//
//	network/  stop labels, layout positions and roads; TOML/YAML loading
//	planner/  labelled itineraries, safe for concurrent use
//	report/   the text itinerary, optionally styled
//	layout/   GeoJSON export of stops, roads and the chosen route
//	server/   HTTP JSON API
//	config/   BUSROUTE_* environment and TOML configuration
//	logging/  logrus logger construction
//
// and the commands busroute (CLI), busroute-server, busroute-tui and
// busroute-mcp.
//
// Quick example on the reference network, seven stops and a college:
//
//	p, _ := planner.New(network.SchoolBus(), nil)
//	it, _ := p.Plan(0)
//	fmt.Print(report.Text(it))
//
//	Edges in the Shortest Route (from Home to College):
//	Stop 1 -> Stop 4 : 16
//	Stop 4 -> Stop 5 : 11
//	Stop 5 -> College : 23
//	Total : 50
package busroute
