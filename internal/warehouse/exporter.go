package warehouse

import (
	"log/slog"
	"os"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/errors"
)

const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// Exporter writes every table of a dataset plus a manifest into a directory
// and returns the paths it wrote.
type Exporter interface {
	Export(ds *generator.Dataset) ([]string, error)
}

func NewExporter(format, dir string) (Exporter, error) {
	switch format {
	case FormatCSV:
		return NewCSVExporter(dir), nil
	case FormatParquet:
		return NewParquetExporter(dir), nil
	default:
		return nil, errors.Validationf("unknown output format %q", format)
	}
}

func prepareDir(dir string, logger *slog.Logger) error {
	if dir == "" {
		return errors.Validation("output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("Failed to create output directory", "dir", dir, "error", err)
		return errors.WrapExternal("failed to create output directory", err)
	}
	return nil
}
