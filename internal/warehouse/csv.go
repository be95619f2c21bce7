package warehouse

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/errors"
)

type CSVExporter struct {
	dir string
}

func NewCSVExporter(dir string) *CSVExporter {
	return &CSVExporter{dir: dir}
}

// Export writes <table>.csv with a header row for every table, then the
// manifest.
func (e *CSVExporter) Export(ds *generator.Dataset) ([]string, error) {
	logger := slog.With("component", "warehouse", "operation", "export_csv", "dir", e.dir)

	if err := prepareDir(e.dir, logger); err != nil {
		return nil, err
	}

	tables := Tables(ds)
	paths := make([]string, 0, len(tables)+1)
	for _, t := range tables {
		path := filepath.Join(e.dir, t.Name+".csv")
		if err := writeCSV(path, t); err != nil {
			logger.Error("Failed to write table", "table", t.Name, "error", err)
			return paths, err
		}
		logger.Debug("Table written", "table", t.Name, "rows", len(t.Rows))
		paths = append(paths, path)
	}

	if err := writeManifest(e.dir, newManifest(ds, FormatCSV, tables, ".csv")); err != nil {
		return paths, err
	}
	paths = append(paths, filepath.Join(e.dir, ManifestFile))

	logger.Info("CSV export complete", "tables", len(tables), "run_id", ds.RunID)
	return paths, nil
}

func writeCSV(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapExternal("failed to create "+filepath.Base(path), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.WrapExternal("failed to close "+filepath.Base(path), closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.ColumnNames()); err != nil {
		return errors.WrapExternal("failed to write header", err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = FormatValue(t.Columns[i], v)
		}
		if err := w.Write(record); err != nil {
			return errors.WrapExternal("failed to write row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapExternal("failed to flush "+filepath.Base(path), err)
	}
	return nil
}
