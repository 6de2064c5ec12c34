package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/fundsflow/fundsflow/internal/db"
)

// FailingWritesUoW decorates a real UnitOfWork and makes the FailOn-th
// write inside each transaction (counting from 1) return Err. Reads pass
// through uncounted. Tests use it to show a tree replacement rolls back
// as a whole.
type FailingWritesUoW struct {
	inner  db.UnitOfWork
	failOn int32
	err    error
}

func NewFailingWritesUoW(database *sql.DB, failOn int32, err error) *FailingWritesUoW {
	return &FailingWritesUoW{inner: db.NewSQLiteUnitOfWork(database), failOn: failOn, err: err}
}

func (u *FailingWritesUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &countingTx{DBTX: tx, failOn: u.failOn, err: u.err})
	})
}

type countingTx struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.writes.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
