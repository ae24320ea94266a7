package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTx satisfies pgx.Tx and scripts the calls repositories make. It
// records every statement so tests can assert the generated SQL.
type fakeTx struct {
	pgx.Tx

	execTag pgconn.CommandTag
	execErr error
	rowErr  error

	gotSQL  []string
	gotArgs [][]any
}

func (f *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.gotSQL = append(f.gotSQL, sql)
	f.gotArgs = append(f.gotArgs, arguments)
	return f.execTag, f.execErr
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.gotSQL = append(f.gotSQL, sql)
	f.gotArgs = append(f.gotArgs, args)
	return fakeRow{err: f.rowErr}
}

func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not scripted")
}

type fakeRow struct {
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return nil
}

// txContext makes the repositories route all queries through f.
func txContext(f *fakeTx) context.Context {
	return context.WithValue(context.Background(), txKey{}, &Tx{Tx: f})
}
