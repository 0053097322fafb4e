package testutil

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/tender/internal/db"
)

// FailingUoW runs transactions through Inner but makes the FailOn-th write
// (1-based) inside each one return Err, so tests can check that
// multi-write operations roll back as a whole. Reads are not counted.
type FailingUoW struct {
	Inner  db.UnitOfWork
	FailOn int
	Err    error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.Inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingTx{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failingTx struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
