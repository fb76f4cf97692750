package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/osse101/BossRush_Go/internal/bootstrap"
	"github.com/osse101/BossRush_Go/internal/config"
	"github.com/osse101/BossRush_Go/internal/database"
	"github.com/osse101/BossRush_Go/internal/maintenance"
)

func main() {
	os.Exit(run())
}

// run resets the game database and deletes the battle log. The log is removed
// even when the database reset fails.
func run() int {
	cfg, err := bootstrap.Setup(bootstrap.ServiceReset)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	ctx, stop := bootstrap.SignalContext(context.Background())
	defer stop()

	failed := false
	if err := resetDatabase(ctx, cfg); err != nil {
		log.Printf("Database reset failed: %v\n", err)
		failed = true
	}

	existed, err := maintenance.RemoveLog(cfg.BattleLogPath)
	switch {
	case err != nil:
		log.Printf("Failed to delete %s: %v\n", cfg.BattleLogPath, err)
		failed = true
	case existed:
		log.Printf("%s file deleted.\n", cfg.BattleLogPath)
	default:
		log.Printf("%s file does not exist.\n", cfg.BattleLogPath)
	}

	if failed {
		return 1
	}
	log.Println("✅ Reset complete!")
	return 0
}

func resetDatabase(ctx context.Context, cfg *config.Config) error {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	opts := maintenance.Options{
		BaselineLevel:  cfg.ResetBaselineLevel,
		MinCharacterID: cfg.ResetMinCharacterID,
		MaxCharacterID: cfg.ResetMaxCharacterID,
	}
	resetter, err := maintenance.NewResetter(pool, opts)
	if err != nil {
		return err
	}

	res, err := resetter.Reset(ctx)
	if err != nil {
		return err
	}

	log.Printf("level_id set to %d for characters with IDs from %d to %d (%d rows).\n",
		opts.BaselineLevel, opts.MinCharacterID, opts.MaxCharacterID, res.CharactersReset)
	log.Printf("total_xp, xp, and att_xtra_points reset to 0 for all players (%d rows).\n", res.PlayersReset)
	log.Printf("character_level_attributes deleted for characters with IDs from %d to %d (%d rows).\n",
		opts.MinCharacterID, opts.MaxCharacterID, res.AttributesDeleted)
	return nil
}
