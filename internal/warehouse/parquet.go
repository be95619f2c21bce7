package warehouse

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/errors"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

var moneyType = &arrow.Decimal128Type{Precision: 14, Scale: 2}

var timestampType = &arrow.TimestampType{Unit: arrow.Millisecond}

type ParquetExporter struct {
	dir string
	mem memory.Allocator
}

func NewParquetExporter(dir string) *ParquetExporter {
	return &ParquetExporter{dir: dir, mem: memory.NewGoAllocator()}
}

func arrowType(t ColumnType) arrow.DataType {
	switch t {
	case TypeInt:
		return arrow.PrimitiveTypes.Int64
	case TypeFloat:
		return arrow.PrimitiveTypes.Float64
	case TypeBool:
		return arrow.FixedWidthTypes.Boolean
	case TypeDate:
		return arrow.FixedWidthTypes.Date32
	case TypeTimestamp:
		return timestampType
	case TypeMoney:
		return moneyType
	default:
		return arrow.BinaryTypes.String
	}
}

// Schema maps a table onto an Arrow schema with one field per column.
func Schema(t Table) *arrow.Schema {
	fields := make([]arrow.Field, len(t.Columns))
	for i, c := range t.Columns {
		fields[i] = arrow.Field{Name: c.Name, Type: arrowType(c.Type), Nullable: c.Nullable}
	}
	metadata := arrow.NewMetadata([]string{"table"}, []string{t.Name})
	return arrow.NewSchema(fields, &metadata)
}

func appendValue(b array.Builder, v any) error {
	if v == nil {
		b.AppendNull()
		return nil
	}
	switch builder := b.(type) {
	case *array.Int64Builder:
		builder.Append(int64(v.(int)))
	case *array.Float64Builder:
		builder.Append(v.(float64))
	case *array.BooleanBuilder:
		builder.Append(v.(bool))
	case *array.StringBuilder:
		builder.Append(v.(string))
	case *array.Date32Builder:
		builder.Append(arrow.Date32FromTime(v.(time.Time)))
	case *array.TimestampBuilder:
		builder.Append(arrow.Timestamp(v.(time.Time).UnixMilli()))
	case *array.Decimal128Builder:
		builder.Append(decimal128.FromI64(int64(v.(generator.Money))))
	default:
		return fmt.Errorf("unsupported builder %T", b)
	}
	return nil
}

// Record builds one Arrow record holding every row of t. The caller
// releases it.
func (e *ParquetExporter) Record(t Table) (arrow.Record, error) {
	schema := Schema(t)
	rb := array.NewRecordBuilder(e.mem, schema)
	defer rb.Release()

	for _, row := range t.Rows {
		for i, v := range row {
			if err := appendValue(rb.Field(i), v); err != nil {
				return nil, errors.WrapInternal(fmt.Sprintf("column %s.%s", t.Name, t.Columns[i].Name), err)
			}
		}
	}
	return rb.NewRecord(), nil
}

// Export writes <table>.parquet for every table, then the manifest.
func (e *ParquetExporter) Export(ds *generator.Dataset) ([]string, error) {
	logger := slog.With("component", "warehouse", "operation", "export_parquet", "dir", e.dir)

	if err := prepareDir(e.dir, logger); err != nil {
		return nil, err
	}

	tables := Tables(ds)
	paths := make([]string, 0, len(tables)+1)
	for _, t := range tables {
		path := filepath.Join(e.dir, t.Name+".parquet")
		if err := e.writeTable(path, t); err != nil {
			logger.Error("Failed to write table", "table", t.Name, "error", err)
			return paths, err
		}
		logger.Debug("Table written", "table", t.Name, "rows", len(t.Rows))
		paths = append(paths, path)
	}

	if err := writeManifest(e.dir, newManifest(ds, FormatParquet, tables, ".parquet")); err != nil {
		return paths, err
	}
	paths = append(paths, filepath.Join(e.dir, ManifestFile))

	logger.Info("Parquet export complete", "tables", len(tables), "run_id", ds.RunID)
	return paths, nil
}

func (e *ParquetExporter) writeTable(path string, t Table) error {
	rec, err := e.Record(t)
	if err != nil {
		return err
	}
	defer rec.Release()

	file, err := os.Create(path)
	if err != nil {
		return errors.WrapExternal("failed to create "+filepath.Base(path), err)
	}
	defer file.Close()

	writer, err := pqarrow.NewFileWriter(rec.Schema(), file, nil, pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(e.mem)))
	if err != nil {
		return errors.WrapExternal("failed to create parquet writer", err)
	}
	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return errors.WrapExternal("failed to write "+t.Name, err)
	}
	if err := writer.Close(); err != nil {
		return errors.WrapExternal("failed to finish "+filepath.Base(path), err)
	}
	return nil
}
