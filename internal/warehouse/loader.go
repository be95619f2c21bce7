package warehouse

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"strings"
	"time"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/database"
	"airline-warehouse/internal/shared/errors"

	"github.com/lib/pq"
)

// Loader bulk-loads tables into the star schema created by the migrations.
type Loader struct {
	db *database.DB
}

func NewLoader(db *database.DB) *Loader {
	return &Loader{db: db}
}

// TruncateStatement empties every star-schema table, facts first.
func TruncateStatement() string {
	names := make([]string, len(TableNames))
	for i, name := range TableNames {
		names[len(TableNames)-1-i] = name
	}
	return "TRUNCATE TABLE " + strings.Join(names, ", ")
}

// Load copies tables in the order given inside a single transaction. With
// truncate set, existing rows are removed first so a run replaces the
// previous one.
func (l *Loader) Load(ctx context.Context, tables []Table, truncate bool) (err error) {
	logger := slog.With("component", "warehouse", "operation", "load")
	start := time.Now()

	tx, err := l.db.BeginTxContext(ctx)
	if err != nil {
		logger.Error("Failed to begin load transaction", "error", err)
		return errors.WrapExternal("failed to begin load transaction", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !stderrors.Is(rbErr, sql.ErrTxDone) {
			logger.Error("Failed to rollback load transaction", "error", rbErr)
		}
	}()

	if truncate {
		logger.Info("Truncating star schema")
		if _, err = tx.ExecContext(ctx, TruncateStatement()); err != nil {
			logger.Error("Failed to truncate star schema", "error", err)
			return errors.WrapExternal("failed to truncate star schema", err)
		}
	}

	for _, t := range tables {
		if err = copyTable(ctx, tx, t); err != nil {
			logger.Error("Failed to load table", "table", t.Name, "error", err)
			return err
		}
		logger.Debug("Table loaded", "table", t.Name, "rows", len(t.Rows))
	}

	if err = tx.Commit(); err != nil {
		logger.Error("Failed to commit load transaction", "error", err)
		return errors.WrapExternal("failed to commit load transaction", err)
	}

	logger.Info("Star schema loaded", "tables", len(tables), "duration", time.Since(start))
	return nil
}

func copyTable(ctx context.Context, exec database.Executor, t Table) error {
	stmt, err := exec.PrepareContext(ctx, pq.CopyIn(t.Name, t.ColumnNames()...))
	if err != nil {
		return errors.WrapExternal("failed to prepare copy into "+t.Name, err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			args[i] = copyValue(t.Columns[i], v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return errors.WrapExternal("failed to copy row into "+t.Name, err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return errors.WrapExternal("failed to flush copy into "+t.Name, err)
	}
	return nil
}

// copyValue hands COPY the same text the CSV export uses for dates,
// timestamps and money so the column types parse them unambiguously.
func copyValue(c Column, v any) any {
	switch v.(type) {
	case time.Time, generator.Money:
		return FormatValue(c, v)
	default:
		return v
	}
}
