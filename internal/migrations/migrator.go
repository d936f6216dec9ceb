// Package migrations brings the persisted store to the current schema
// version, exactly once per process start. Migration failure is fatal to
// startup: the system must not operate against a partially-migrated store.
package migrations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema_version is the single-row version marker other tooling reads. It is
// rewritten delete-then-insert so it always holds exactly one row, one
// INTEGER column.
const versionTable = `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);`

// Run applies all pending migrations and writes the final version marker.
// A missing or unreadable marker is treated as version 0.
func Run(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	if _, err := pool.Exec(ctx, versionTable); err != nil {
		return fmt.Errorf("failed to ensure schema_version table: %w", err)
	}

	current := readVersion(ctx, pool, logger)
	todo := pending(current)
	if len(todo) == 0 {
		logger.Info("Schema up to date", slog.Int("version", current))
		return nil
	}

	for _, m := range todo {
		if err := apply(ctx, pool, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		logger.Info("Applied migration", slog.Int("version", m.Version), slog.String("name", m.Name))
	}

	if err := writeVersion(ctx, pool, Target()); err != nil {
		return err
	}
	logger.Info("Schema migrated", slog.Int("from", current), slog.Int("to", Target()))
	return nil
}

// readVersion reads the current marker, defaulting to 0 when the row is
// missing or unreadable. Defaulting is safe because every statement is
// IF NOT EXISTS / creation-only.
func readVersion(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) int {
	var version int
	err := pool.QueryRow(ctx, `SELECT version FROM schema_version LIMIT 1;`).Scan(&version)
	if err != nil {
		logger.Warn("Could not read schema version, assuming 0", slog.String("error", err.Error()))
		return 0
	}
	return version
}

// apply runs one migration's statements inside a single transaction.
func apply(ctx context.Context, pool *pgxpool.Pool, m Migration) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin migration transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range m.Statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("statement failed: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// writeVersion replaces the marker row, delete-then-insert, under one
// transaction so the table always holds exactly one row.
func writeVersion(ctx context.Context, pool *pgxpool.Pool, version int) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin version write: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM schema_version;`); err != nil {
		return fmt.Errorf("failed to clear schema_version: %w", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_version (version) VALUES ($1);`, version); err != nil {
		return fmt.Errorf("failed to write schema_version: %w", err)
	}
	return tx.Commit(ctx)
}
