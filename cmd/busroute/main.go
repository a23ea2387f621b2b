// Command busroute prints the shortest route from a stop to the destination
// of a bus network.
//
//	busroute [-network file] [-source stop] [-target stop] [-json] [-color]
//
// Stops are given by index or by label. Without -network the built-in school
// bus network is used.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/busroute/config"
	"github.com/katalvlaran/busroute/logging"
	"github.com/katalvlaran/busroute/network"
	"github.com/katalvlaran/busroute/planner"
	"github.com/katalvlaran/busroute/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("busroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	netFile := fs.String("network", cfg.Network, "network description file (.toml, .yaml)")
	source := fs.String("source", "", "source stop, by index or label (default: first stop)")
	target := fs.String("target", "", "target stop, by index or label (default: network destination)")
	asJSON := fs.Bool("json", false, "print the itinerary as JSON")
	color := fs.Bool("color", false, "style the text report")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, stderr)

	net := network.SchoolBus()
	if *netFile != "" {
		if net, err = network.Load(*netFile); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	p, err := planner.New(net, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	from := 0
	if cfg.Source >= 0 {
		from = cfg.Source
	}
	if *source != "" {
		if from, err = resolve(net, *source); err != nil {
			fmt.Fprintf(stderr, "error: -source: %v\n", err)
			return 1
		}
	}
	to := net.Destination
	if *target != "" {
		if to, err = resolve(net, *target); err != nil {
			fmt.Fprintf(stderr, "error: -target: %v\n", err)
			return 1
		}
	}

	it, err := p.PlanTo(from, to)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(it); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	} else {
		theme := report.Plain()
		if *color {
			theme = report.DefaultTheme()
		}
		if err := report.Write(stdout, it, theme); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if !it.Reachable {
		return 3
	}
	return 0
}

// resolve accepts a stop index or a stop label.
func resolve(net *network.Network, s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	if v, ok := net.Lookup(s); ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown stop %q", s)
}
