package warehouse

import (
	"bytes"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, seed int64) *generator.Dataset {
	t.Helper()
	ds, err := generator.Generate(generator.Config{
		Flights:           100,
		Customers:         50,
		StartDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Routes:            150,
		BookingsPerFlight: 2,
		Seed:              &seed,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return ds
}

func TestTablesOrderAndShape(t *testing.T) {
	ds := generate(t, 1)
	tables := Tables(ds)

	require.Len(t, tables, len(TableNames))
	for i, table := range tables {
		assert.Equal(t, TableNames[i], table.Name)
		for _, row := range table.Rows {
			require.Len(t, row, len(table.Columns), table.Name)
		}
	}

	assert.Len(t, tables[0].Rows, 31)
	assert.Len(t, tables[1].Rows, 96)
	assert.Len(t, tables[7].Rows, 100)
	assert.Len(t, tables[8].Rows, len(ds.Bookings))
	assert.Len(t, tables[9].Rows, len(ds.Journeys))
}

func TestNullsOnlyInNullableColumns(t *testing.T) {
	for _, table := range Tables(generate(t, 2)) {
		for _, row := range table.Rows {
			for i, v := range row {
				if v == nil {
					assert.True(t, table.Columns[i].Nullable, "%s.%s", table.Name, table.Columns[i].Name)
				}
			}
		}
	}
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2024, 1, 5, 9, 45, 0, 0, time.UTC)

	assert.Equal(t, "", FormatValue(col("x", TypeString), nil))
	assert.Equal(t, "42", FormatValue(col("x", TypeInt), 42))
	assert.Equal(t, "73.25", FormatValue(col("x", TypeFloat), 73.25))
	assert.Equal(t, "true", FormatValue(col("x", TypeBool), true))
	assert.Equal(t, "2024-01-05", FormatValue(col("x", TypeDate), ts))
	assert.Equal(t, "2024-01-05 09:45", FormatValue(col("x", TypeTimestamp), ts))
	assert.Equal(t, "1234.50", FormatValue(col("x", TypeMoney), generator.Money(123450)))
}

func TestCSVExport(t *testing.T) {
	ds := generate(t, 3)
	dir := t.TempDir()

	paths, err := NewCSVExporter(dir).Export(ds)
	require.NoError(t, err)
	assert.Len(t, paths, len(TableNames)+1)

	f, err := os.Open(filepath.Join(dir, "fact_flight.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 101)
	assert.Equal(t, "flight_id", records[0][0])
	assert.Equal(t, "total_revenue", records[0][len(records[0])-1])

	m, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, ds.RunID.String(), m.RunID)
	assert.Equal(t, int64(3), m.Seed)
	assert.Equal(t, FormatCSV, m.Format)
	assert.Equal(t, 50, m.Config.Passengers)
	assert.Equal(t, "2024-01-31", m.Config.EndDate)
	require.Len(t, m.Tables, len(TableNames))
	assert.Equal(t, "dim_time.csv", m.Tables[1].File)
	assert.Equal(t, 96, m.Tables[1].Rows)
}

func TestCSVExportIsByteIdenticalForSameSeed(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	_, err := NewCSVExporter(first).Export(generate(t, 9))
	require.NoError(t, err)
	_, err = NewCSVExporter(second).Export(generate(t, 9))
	require.NoError(t, err)

	for _, name := range append(append([]string{}, TableNames...), "manifest") {
		file := name + ".csv"
		if name == "manifest" {
			file = ManifestFile
		}
		a, err := os.ReadFile(filepath.Join(first, file))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, file))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(a, b), file)
	}
}

func TestExportToUnwritableDestination(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewCSVExporter(filepath.Join(blocker, "out")).Export(generate(t, 4))
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeExternal, errors.GetType(err))

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestNewExporter(t *testing.T) {
	e, err := NewExporter(FormatCSV, "out")
	require.NoError(t, err)
	assert.IsType(t, &CSVExporter{}, e)

	e, err = NewExporter(FormatParquet, "out")
	require.NoError(t, err)
	assert.IsType(t, &ParquetExporter{}, e)

	_, err = NewExporter("xlsx", "out")
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
}
