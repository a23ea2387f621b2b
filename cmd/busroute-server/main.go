// Command busroute-server serves the busroute HTTP API.
//
// Configuration comes from BUSROUTE_* environment variables, optionally
// layered over a TOML file given with -config. Flags override both.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/busroute/config"
	"github.com/katalvlaran/busroute/logging"
	"github.com/katalvlaran/busroute/network"
	"github.com/katalvlaran/busroute/planner"
	"github.com/katalvlaran/busroute/server"
)

func main() {
	configFile := flag.String("config", "", "TOML configuration file")
	addr := flag.String("addr", "", "listen address (overrides BUSROUTE_ADDR)")
	netFile := flag.String("network", "", "network description file (overrides BUSROUTE_NETWORK)")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *netFile != "" {
		cfg.Network = *netFile
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	p, err := newPlanner(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("cannot load network")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(p, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("shutdown")
		}
	}()

	logger.WithField("addr", cfg.Addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("server failed")
	}
	logger.Info("stopped")
}

func loadConfig(file string) (*config.Config, error) {
	if file != "" {
		return config.LoadFile(file)
	}
	return config.Load()
}

func newPlanner(cfg *config.Config, logger *logrus.Logger) (*planner.Planner, error) {
	net := network.SchoolBus()
	if cfg.Network != "" {
		var err error
		if net, err = network.Load(cfg.Network); err != nil {
			return nil, err
		}
	}
	return planner.New(net, logger)
}
