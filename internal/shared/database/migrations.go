package database

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"airline-warehouse/internal/shared/errors"
)

const migrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMP DEFAULT NOW()
)`

// RunMigrations applies the *.sql files directly under dir in lexical order,
// skipping versions schema_migrations already records. Each file runs in its
// own transaction. It returns the versions applied by this call.
func (db *DB) RunMigrations(ctx context.Context, dir string) ([]string, error) {
	logger := slog.With("component", "migrations", "operation", "run", "dir", dir)

	files, err := migrationFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Validationf("no migrations found in %s; set DB_MIGRATIONS_PATH to the star schema directory", dir)
	}

	if _, err := db.ExecContext(ctx, migrationsTable); err != nil {
		return nil, errors.WrapExternal("failed to create schema_migrations", err)
	}

	var applied []string
	for _, file := range files {
		version := filepath.Base(file)
		ran, err := db.applyMigration(ctx, file, version)
		if err != nil {
			logger.Error("Migration failed", "version", version, "error", err)
			return applied, errors.WrapExternal(fmt.Sprintf("migration %s in %s failed", version, dir), err)
		}
		if ran {
			applied = append(applied, version)
		}
	}

	logger.Info("Star schema up to date", "available", len(files), "applied", applied)
	return applied, nil
}

// migrationFiles lists dir non-recursively; subdirectories are ignored.
func migrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapExternal(fmt.Sprintf("cannot read migrations directory %s", dir), err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

func (db *DB) applyMigration(ctx context.Context, file, version string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check applied: %w", err)
	}
	if exists {
		slog.Debug("Migration already applied", "component", "migrations", "version", version)
		return false, nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return false, err
	}

	tx, err := db.BeginTxContext(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !stderrors.Is(err, sql.ErrTxDone) {
			slog.Error("Failed to roll back migration", "component", "migrations", "version", version, "error", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return false, fmt.Errorf("record version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}

	slog.Info("Migration applied", "component", "migrations", "version", version, "size_bytes", len(content))
	return true, nil
}
