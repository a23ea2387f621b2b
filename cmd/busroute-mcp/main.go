// Command busroute-mcp is an MCP server that exposes bus route planning as
// tools for LLM agents over stdio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/busroute/config"
	"github.com/katalvlaran/busroute/logging"
	"github.com/katalvlaran/busroute/network"
	"github.com/katalvlaran/busroute/planner"
	"github.com/katalvlaran/busroute/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	netFile := flag.String("network", cfg.Network, "network description file (.toml, .yaml)")
	flag.Parse()

	// stdout carries the protocol; logs go to stderr.
	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	net := network.SchoolBus()
	if *netFile != "" {
		if net, err = network.Load(*netFile); err != nil {
			logger.WithError(err).Fatal("cannot load network")
		}
	}
	p, err := planner.New(net, logger)
	if err != nil {
		logger.WithError(err).Fatal("cannot build planner")
	}

	s := server.NewMCPServer("busroute-mcp", "0.1.0")

	h := &handler{planner: p}
	s.AddTool(listStopsTool(), h.listStops)
	s.AddTool(shortestRouteTool(net), h.shortestRoute)
	s.AddTool(edgeWeightTool(), h.edgeWeight)

	if err := server.ServeStdio(s); err != nil {
		logger.WithError(err).Fatal("mcp server stopped")
	}
}

type handler struct {
	planner *planner.Planner
}

// resolve accepts a stop index or a stop label.
func (h *handler) resolve(s string) (int, error) {
	net := h.planner.Network()
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if v < 0 || v >= len(net.Stops) {
			return 0, fmt.Errorf("stop %d does not exist (valid: 0..%d)", v, len(net.Stops)-1)
		}
		return v, nil
	}
	if v, ok := net.Lookup(s); ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown stop %q", s)
}

// Tool definitions.

const stopDesc = "stop index (0-based) or stop label, e.g. 0 or \"Stop 1\""

func listStopsTool() mcp.Tool {
	return mcp.NewTool("list_stops",
		mcp.WithDescription(
			"List the stops of the bus network with their indices, "+
				"the destination and every road with its weight.",
		),
	)
}

func shortestRouteTool(net *network.Network) mcp.Tool {
	return mcp.NewTool("shortest_route",
		mcp.WithDescription(
			"Compute the least-cost bus route between two stops. "+
				"Returns every segment with its weight and the total. "+
				fmt.Sprintf("The target defaults to the destination, %s.", net.Label(net.Destination)),
		),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description(stopDesc),
		),
		mcp.WithString("target",
			mcp.Description(stopDesc),
		),
	)
}

func edgeWeightTool() mcp.Tool {
	return mcp.NewTool("edge_weight",
		mcp.WithDescription(
			"Return the weight of the road directly connecting two stops. "+
				"Fails when the stops are not adjacent.",
		),
		mcp.WithString("u",
			mcp.Required(),
			mcp.Description(stopDesc),
		),
		mcp.WithString("v",
			mcp.Required(),
			mcp.Description(stopDesc),
		),
	)
}

// Tool handlers.

func (h *handler) listStops(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	net := h.planner.Network()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d stops, destination %s\n\nStops:\n", net.Name, len(net.Stops), net.Label(net.Destination))
	for v := range net.Stops {
		fmt.Fprintf(&b, "  %d  %s\n", v, net.Label(v))
	}
	b.WriteString("\nRoads:\n")
	for _, e := range h.planner.Graph().Edges() {
		fmt.Fprintf(&b, "  %s -- %s : %d\n", net.Label(e.From), net.Label(e.To), e.Weight)
	}
	if stranded := h.planner.Stranded(); len(stranded) > 0 {
		b.WriteString("\nNo route to the destination from:")
		for _, v := range stranded {
			b.WriteString(" " + net.Label(v))
		}
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (h *handler) shortestRoute(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawSource, err := req.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError("source is required"), nil
	}
	source, err := h.resolve(rawSource)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid source: %v", err)), nil
	}

	target := h.planner.Destination()
	if rawTarget := req.GetString("target", ""); rawTarget != "" {
		if target, err = h.resolve(rawTarget); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid target: %v", err)), nil
		}
	}

	it, err := h.planner.PlanTo(source, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("planning failed: %v", err)), nil
	}

	return mcp.NewToolResultText(report.Text(it)), nil
}

func (h *handler) edgeWeight(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawU, err := req.RequireString("u")
	if err != nil {
		return mcp.NewToolResultError("u is required"), nil
	}
	rawV, err := req.RequireString("v")
	if err != nil {
		return mcp.NewToolResultError("v is required"), nil
	}
	u, err := h.resolve(rawU)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid u: %v", err)), nil
	}
	v, err := h.resolve(rawV)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid v: %v", err)), nil
	}

	w, err := h.planner.EdgeWeight(u, v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s and %s are not directly connected", h.planner.Network().Label(u), h.planner.Network().Label(v))), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s -- %s : %d", h.planner.Network().Label(u), h.planner.Network().Label(v), w)), nil
}
