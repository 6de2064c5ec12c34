package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory database that lives until the test
// ends.
func NewTestDB(t testing.TB) *sql.DB {
	return openTestDB(t, db.MemoryPath)
}

// NewFileTestDB opens a migrated WAL database under t.TempDir. Tests that
// need several pooled connections sharing one state use it.
func NewFileTestDB(t testing.TB) *sql.DB {
	return openTestDB(t, filepath.Join(t.TempDir(), "fundsflow_test.db"))
}

func openTestDB(t testing.TB, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening test database %s", path)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
