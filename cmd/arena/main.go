package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/osse101/BossRush_Go/internal/arena"
	"github.com/osse101/BossRush_Go/internal/bootstrap"
	"github.com/osse101/BossRush_Go/internal/server"
)

// @title BossRush API
// @version 1.0
// @description Scripted game API used by the simulator, plus the status endpoints.
// @BasePath /
func main() {
	os.Exit(run())
}

func run() int {
	scenarioPath := flag.String("scenario", "scenario.yaml", "YAML scenario to serve")
	flag.Parse()

	cfg, err := bootstrap.Setup(bootstrap.ServiceArena)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	scenario, err := arena.LoadScenario(*scenarioPath)
	if err != nil {
		slog.Error("Failed to load scenario", "path", *scenarioPath, "error", err)
		return 1
	}

	ctx, stop := bootstrap.SignalContext(context.Background())
	defer stop()

	r := server.NewRouter()
	arena.New(scenario).Mount(r)
	srv := server.New(cfg.ArenaPort, r)

	bootstrap.StartServer(srv)
	slog.Info("Arena ready", "port", cfg.ArenaPort, "teams", len(scenario.Teams))

	<-ctx.Done()
	bootstrap.GracefulShutdown(srv)
	return 0
}
