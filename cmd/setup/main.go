package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/osse101/BossRush_Go/internal/bootstrap"
	"github.com/osse101/BossRush_Go/internal/database"
)

func main() {
	os.Exit(run())
}

// run creates the game database if it's missing and applies the embedded
// migrations
func run() int {
	cfg, err := bootstrap.Setup(bootstrap.ServiceSetup)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	ctx, stop := bootstrap.SignalContext(context.Background())
	defer stop()

	created, err := database.EnsureDatabase(ctx, cfg.GetServerConnString(), cfg.DBName)
	if err != nil {
		log.Printf("Failed to prepare database %s: %v\n", cfg.DBName, err)
		return 1
	}
	if created {
		log.Printf("Database %s created successfully.\n", cfg.DBName)
	} else {
		log.Printf("Database %s already exists.\n", cfg.DBName)
	}

	log.Println("Running migrations...")
	applied, err := database.Migrate(ctx, cfg.GetDBConnString())
	if err != nil {
		log.Printf("Failed to execute migrations: %v\n", err)
		return 1
	}

	log.Printf("Migration completed successfully (%d applied).\n", len(applied))
	return 0
}
