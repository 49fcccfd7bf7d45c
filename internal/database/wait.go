// Package database provides the optional wait-for-PostgreSQL pre-flight.
// It is only used when WAIT_FOR_DB is set; the default pipeline starts the
// migration step immediately.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WaitReady polls the database until a connection ping succeeds or ctx
// expires. A malformed URL fails immediately rather than being retried.
func WaitReady(ctx context.Context, logger *slog.Logger, databaseURL string, interval time.Duration) error {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}

	for {
		if err := ping(ctx, poolConfig); err == nil {
			logger.Info("database is ready")
			return nil
		} else {
			logger.Warn("database not ready", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("gave up waiting for database: %w", ctx.Err())
		case <-time.After(interval):
		}
	}
}

func ping(ctx context.Context, poolConfig *pgxpool.Config) error {
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pool.Ping(ctx)
}
