package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/osse101/BossRush_Go/internal/battlelog"
	"github.com/osse101/BossRush_Go/internal/bootstrap"
	"github.com/osse101/BossRush_Go/internal/gameapi"
	"github.com/osse101/BossRush_Go/internal/logger"
	"github.com/osse101/BossRush_Go/internal/metrics"
	"github.com/osse101/BossRush_Go/internal/server"
	"github.com/osse101/BossRush_Go/internal/simulation"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := bootstrap.Setup(bootstrap.ServiceSimulate)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	ctx, stop := bootstrap.SignalContext(context.Background())
	defer stop()

	runID := logger.GenerateRunID()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.FromContext(ctx)

	battleLog, err := battlelog.Open(cfg.BattleLogPath, runID)
	if err != nil {
		log.Error("Failed to open battle log", "path", cfg.BattleLogPath, "error", err)
		return 1
	}
	defer battleLog.Close()

	tracker := simulation.NewTracker()
	if cfg.StatusPort > 0 {
		srv := server.NewStatusServer(cfg.StatusPort, tracker)
		bootstrap.StartServer(srv)
		defer bootstrap.GracefulShutdown(srv)
	}

	engine := simulation.NewEngine(simulation.Config{
		Teams:           cfg.Teams,
		DefeatThreshold: cfg.DefeatThreshold,
		BadgesPerGrant:  cfg.BadgesPerGrant,
		XPPerBadge:      cfg.XPPerBadge,
		MaxRounds:       cfg.MaxRounds,
		RoundDelay:      cfg.RoundDelay,
	}, gameapi.NewClient(cfg.APIBaseURL, cfg.APITimeout), metrics.NewRecordingAppender(battleLog), tracker)

	summary, err := engine.Run(ctx)
	if err != nil {
		log.Error("Simulation failed", "error", err, "rounds", summaryRounds(summary))
		return 1
	}

	for _, team := range cfg.Teams {
		log.Info("Team result",
			"team", team.ID,
			"finished_round", summary.FinishedRound[team.ID],
			"badges", summary.Badges[team.ID],
			"bosses_defeated", summary.Defeats[team.ID])
	}
	log.Info("Battle log written", "path", cfg.BattleLogPath, "rounds", summary.Rounds)
	return 0
}

func summaryRounds(s *simulation.Summary) int {
	if s == nil {
		return 0
	}
	return s.Rounds
}
