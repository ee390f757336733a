package db

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the Postgres connection pool holding lint run history.
type DB struct {
	pool *pgxpool.Pool
}

// ResolveURL picks the connection string: an explicit configured URL wins,
// then the LINTGATE_DATABASE_URL environment variable. Empty result means
// no database is configured; persistence is optional.
func ResolveURL(configured string) string {
	if configured != "" {
		return configured
	}
	return os.Getenv("LINTGATE_DATABASE_URL")
}

// Connect opens a pool against url and verifies the connection.
func Connect(ctx context.Context, url string) (*DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close releases the pool.
func (d *DB) Close() {
	d.pool.Close()
}

const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (
    version    INTEGER PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS lint_runs (
    id          BIGSERIAL PRIMARY KEY,
    tool        TEXT NOT NULL,
    format      TEXT NOT NULL,
    exit_code   INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    files       INTEGER NOT NULL,
    total       INTEGER NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_lint_runs_tool ON lint_runs(tool, created_at DESC);

CREATE TABLE IF NOT EXISTS lint_violations (
    id      BIGSERIAL PRIMARY KEY,
    run_id  BIGINT NOT NULL REFERENCES lint_runs(id) ON DELETE CASCADE,
    path    TEXT NOT NULL,
    line    INTEGER NOT NULL,
    col     INTEGER NOT NULL,
    code    TEXT NOT NULL,
    message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lint_violations_run ON lint_violations(run_id, path);
`

// Migrate applies the database schema. Safe to call repeatedly.
func (d *DB) Migrate(ctx context.Context) error {
	var count int
	err := d.pool.QueryRow(ctx, "SELECT COUNT(*) FROM schema_version WHERE version = 1").Scan(&count)
	if err == nil && count > 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, schemaV1); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := tx.Exec(ctx, "INSERT INTO schema_version (version) VALUES (1) ON CONFLICT DO NOTHING"); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
