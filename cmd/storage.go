package main

import (
	"context"
	"fmt"
	"log/slog"

	"ads-board/db/migrations"
	"ads-board/internal/adapter/postgres"
	"ads-board/internal/adapter/sqlite"
	"ads-board/internal/config"
	"ads-board/internal/core/port"
	"ads-board/internal/db"
)

// openStorage runs migrations if enabled and opens the repository selected
// by cfg.StorageDriver. The returned func releases the storage handle.
func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.AdRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(migrations.Postgres, cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewAdRepository(pool), pool.Close, nil

	case config.DriverSQLite:
		// Opened first so the parent directory exists before migrating.
		sqlDB, err := db.NewSQLiteDB(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		if cfg.SQLite.RunMigrations {
			if err = db.Migrate(migrations.SQLite, db.SQLiteURL(cfg.SQLite.Path)); err != nil {
				_ = sqlDB.Close()
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		return sqlite.NewAdRepository(sqlDB), func() { _ = sqlDB.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
