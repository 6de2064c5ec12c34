package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertRoot = `INSERT INTO fund_nodes (dashboard, id, name, type, amount) VALUES ('government', ?, ?, 'national', ?)`

func openTestDB(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func nodeCount(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM fund_nodes`).Scan(&n))
	return n
}

func TestWithinTx_Commits(t *testing.T) {
	database, uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertRoot, "national-001", "National Health Fund", int64(1_000_000_000))
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, nodeCount(t, database))
}

func TestWithinTx_ErrorRollsBackEveryWrite(t *testing.T) {
	database, uow := openTestDB(t)
	boom := errors.New("import aborted")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertRoot, "a", "A", 1); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertRoot, "b", "B", 2); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, nodeCount(t, database))
}

func TestWithinTx_ConstraintViolationRollsBack(t *testing.T) {
	database, uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertRoot, "ok", "OK", 1); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertRoot, "negative", "Negative", -5)
		return err
	})
	require.Error(t, err)
	assert.Zero(t, nodeCount(t, database))
}

func TestWithinTx_PanicRollsBackAndRepanics(t *testing.T) {
	database, uow := openTestDB(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertRoot, "p", "P", 1)
			panic("boom")
		})
	})
	assert.Zero(t, nodeCount(t, database))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	_, uow := openTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}

func TestOpenDB_SchemaIsIdempotent(t *testing.T) {
	database, _ := openTestDB(t)
	require.NoError(t, db.Migrate(database))

	var n int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('fund_nodes', 'ledger_entries')`,
	).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestOpenDB_ForeignKeysEnforced(t *testing.T) {
	database, _ := openTestDB(t)

	_, err := database.Exec(`INSERT INTO fund_nodes (dashboard, id, parent_id, name, type, amount)
		VALUES ('government', 'orphan', 'missing', 'Orphan', 'state', 1)`)
	assert.Error(t, err)
}
