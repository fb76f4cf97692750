package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/osse101/BossRush_Go/internal/logger"
	"github.com/osse101/BossRush_Go/migrations"
)

// Migrate applies every pending embedded migration and returns the versions
// that were applied
func Migrate(ctx context.Context, connString string) ([]int64, error) {
	return MigrateFS(ctx, connString, migrations.FS)
}

// MigrateFS applies the goose migrations found at the root of fsys
func MigrateFS(ctx context.Context, connString string, fsys fs.FS) ([]int64, error) {
	db, err := sql.Open(DriverName, connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	log := logger.FromContext(ctx)
	applied := make([]int64, 0, len(results))
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}
