package db

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"luxora-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// migrationLockID serializes concurrent migration runs via pg_advisory_xact_lock.
const migrationLockID = 727_001

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type MigrationStatus struct {
	Version string
	Applied bool
}

// Migrate applies every *.sql file in dir that is not yet recorded in
// schema_migrations, in lexical order, one transaction per file.
func Migrate(ctx context.Context, pool *pgxpool.Pool, dir fs.FS) ([]string, error) {
	files, err := migrationFiles(dir)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return nil, errs.Wrap(err, "failed to create schema_migrations")
	}

	var applied []string
	for _, name := range files {
		ok, err := applyOne(ctx, pool, dir, name)
		if err != nil {
			return applied, err
		}
		if ok {
			slog.Info("migration applied", "version", name)
			applied = append(applied, name)
		}
	}
	return applied, nil
}

func Status(ctx context.Context, pool *pgxpool.Pool, dir fs.FS) ([]MigrationStatus, error) {
	files, err := migrationFiles(dir)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return nil, errs.Wrap(err, "failed to create schema_migrations")
	}

	rows, err := pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read schema_migrations")
	}
	done, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errs.Wrap(err, "failed to read schema_migrations")
	}
	seen := make(map[string]bool, len(done))
	for _, v := range done {
		seen[v] = true
	}

	out := make([]MigrationStatus, 0, len(files))
	for _, name := range files {
		out = append(out, MigrationStatus{Version: name, Applied: seen[name]})
	}
	return out, nil
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, dir fs.FS, name string) (bool, error) {
	body, err := fs.ReadFile(dir, name)
	if err != nil {
		return false, errs.Wrapf(err, "failed to read migration %s", name)
	}

	applied := false
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockID); err != nil {
			return err
		}
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, errs.Wrapf(err, "failed to apply migration %s", name)
	}
	return applied, nil
}

func migrationFiles(dir fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(dir, ".")
	if err != nil {
		return nil, errs.Wrap(err, "failed to list migrations")
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
