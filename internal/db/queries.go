package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lucasnoah/lintgate/internal/violations"
)

// RunRecord is a row in lint_runs.
type RunRecord struct {
	ID         int64
	Tool       string
	Format     string
	ExitCode   int
	DurationMs int
	Files      int
	Total      int
	CreatedAt  time.Time
}

// ViolationRecord is a row in lint_violations.
type ViolationRecord struct {
	Path    string
	Line    int
	Column  int
	Code    string
	Message string
}

// RecordRun inserts a run and all of its violations in one transaction,
// returning the new run id. Violations are bulk-loaded with COPY since a
// single run can easily carry thousands of rows.
func (d *DB) RecordRun(ctx context.Context, tool, format string, exitCode, durationMs int, vmap *violations.Map) (int64, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin run insert: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO lint_runs (tool, format, exit_code, duration_ms, files, total)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		tool, format, exitCode, durationMs, vmap.Len(), vmap.Total(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	rows := make([][]any, 0, vmap.Total())
	for _, path := range vmap.Paths() {
		for _, v := range vmap.Get(path) {
			rows = append(rows, []any{id, path, v.Line, v.Column, v.Code, v.Message})
		}
	}
	if len(rows) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"lint_violations"},
			[]string{"run_id", "path", "line", "col", "code", "message"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return 0, fmt.Errorf("copy violations: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// RecentRuns returns the most recent runs, newest first, optionally filtered
// by tool name. Pass "" for no filter.
func (d *DB) RecentRuns(ctx context.Context, tool string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, tool, format, exit_code, duration_ms, files, total, created_at
	          FROM lint_runs`
	args := []any{}
	if tool != "" {
		query += ` WHERE tool = $1`
		args = append(args, tool)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Tool, &r.Format, &r.ExitCode, &r.DurationMs, &r.Files, &r.Total, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunViolations returns all violations recorded for a run, grouped the way
// they were inserted: path insertion order, then per-path order.
func (d *DB) RunViolations(ctx context.Context, runID int64) ([]ViolationRecord, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT path, line, col, code, message FROM lint_violations WHERE run_id = $1 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query violations: %w", err)
	}
	defer rows.Close()

	var vs []ViolationRecord
	for rows.Next() {
		var v ViolationRecord
		if err := rows.Scan(&v.Path, &v.Line, &v.Column, &v.Code, &v.Message); err != nil {
			return nil, fmt.Errorf("scan violation: %w", err)
		}
		vs = append(vs, v)
	}
	return vs, rows.Err()
}
