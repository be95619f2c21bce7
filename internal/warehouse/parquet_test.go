package warehouse

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaTypes(t *testing.T) {
	flights := Tables(generate(t, 5))[7]
	schema := Schema(flights)

	require.Equal(t, len(flights.Columns), schema.NumFields())

	revenue, ok := schema.FieldsByName("total_revenue")
	require.True(t, ok)
	assert.Equal(t, arrow.DECIMAL128, revenue[0].Type.ID())

	actual, ok := schema.FieldsByName("actual_arrival")
	require.True(t, ok)
	assert.Equal(t, arrow.TIMESTAMP, actual[0].Type.ID())
	assert.True(t, actual[0].Nullable)
}

func TestRecordPreservesRowsAndNulls(t *testing.T) {
	ds := generate(t, 6)
	flights := Tables(ds)[7]

	rec, err := NewParquetExporter(t.TempDir()).Record(flights)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(len(flights.Rows)), rec.NumRows())

	cancelled := 0
	for _, f := range ds.Flights {
		if f.ActualDeparture == nil {
			cancelled++
		}
	}
	for i, c := range flights.Columns {
		if c.Name == "actual_departure" {
			assert.Equal(t, cancelled, rec.Column(i).NullN())
		}
	}
}

func TestParquetExportRoundTrip(t *testing.T) {
	ds := generate(t, 7)
	dir := t.TempDir()

	paths, err := NewParquetExporter(dir).Export(ds)
	require.NoError(t, err)
	assert.Len(t, paths, len(TableNames)+1)

	f, err := os.Open(filepath.Join(dir, "fact_booking.parquet"))
	require.NoError(t, err)
	defer f.Close()

	table, err := pqarrow.ReadTable(context.Background(), f,
		parquet.NewReaderProperties(memory.DefaultAllocator),
		pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	require.NoError(t, err)
	defer table.Release()

	assert.Equal(t, int64(len(ds.Bookings)), table.NumRows())
	assert.Equal(t, int64(len(Tables(ds)[8].Columns)), table.NumCols())

	m, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, FormatParquet, m.Format)
	assert.Equal(t, "fact_booking.parquet", m.Tables[8].File)
}
