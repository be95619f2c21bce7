package database

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"airline-warehouse/internal/shared/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const existsQuery = "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)"

func migrationsDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))
	return dir
}

func mockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db}, mock
}

func TestRunMigrationsAppliesPendingInOrder(t *testing.T) {
	dir := migrationsDir(t, map[string]string{
		"002_indexes.sql":            "CREATE INDEX idx_flight_date ON fact_flight (date_id);",
		"001_create_star_schema.sql": "CREATE TABLE dim_date (date_id INT);",
		"README.md":                  "not a migration",
	})
	db, mock := mockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).WithArgs("001_create_star_schema.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).WithArgs("002_indexes.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX idx_flight_date")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).WithArgs("002_indexes.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := db.RunMigrations(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"002_indexes.sql"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsFailureNamesVersion(t *testing.T) {
	dir := migrationsDir(t, map[string]string{"001_create_star_schema.sql": "CREATE TABLE broken ("})
	db, mock := mockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).WithArgs("001_create_star_schema.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE broken (")).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	applied, err := db.RunMigrations(context.Background(), dir)
	require.Error(t, err)
	assert.Empty(t, applied)
	assert.True(t, errors.Is(err, errors.ErrorTypeExternal))
	assert.Contains(t, err.Error(), "001_create_star_schema.sql")
	assert.Contains(t, err.Error(), dir)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsMissingDirectory(t *testing.T) {
	db, mock := mockDB(t)

	_, err := db.RunMigrations(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, errors.ErrorTypeExternal))

	_, err = db.RunMigrations(context.Background(), t.TempDir())
	assert.True(t, errors.Is(err, errors.ErrorTypeValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}
