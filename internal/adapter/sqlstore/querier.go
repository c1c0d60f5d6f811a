package sqlstore

import (
	"context"
	"database/sql"
)

// Querier is the common interface implemented by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// querierFromCtx returns the transaction from context if present,
// otherwise the database handle.
func (db *DB) querierFromCtx(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

// sqlizer is implemented by every squirrel builder.
type sqlizer interface {
	ToSql() (string, []any, error)
}

func (db *DB) exec(ctx context.Context, b sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return db.querierFromCtx(ctx).ExecContext(ctx, query, args...)
}

func (db *DB) query(ctx context.Context, b sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return db.querierFromCtx(ctx).QueryContext(ctx, query, args...)
}

func (db *DB) queryRow(ctx context.Context, b sqlizer) (*sql.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return db.querierFromCtx(ctx).QueryRowContext(ctx, query, args...), nil
}
