// Command busroute-tui is an interactive picker for the home stop. It shows
// the route to the network destination for the chosen stop.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

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
	plain := flag.Bool("plain", false, "disable report colours")
	flag.Parse()

	net := network.SchoolBus()
	if *netFile != "" {
		if net, err = network.Load(*netFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	// The terminal belongs to the UI; only errors are logged.
	p, err := planner.New(net, logging.New(cfg.LogFormat, "error", os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	theme := report.DefaultTheme()
	if *plain {
		theme = report.Plain()
	}

	if _, err := tea.NewProgram(newModel(p, theme, cfg.Source), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
