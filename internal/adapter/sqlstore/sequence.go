package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sensorfactory/nexus/internal/domain"
)

// Sequence names, one per prefixed collection.
const (
	seqSensors = "sensors"
	seqClients = "clients"
	seqOrders  = "orders"
)

// nextID draws the next value of a sequence and formats it with prefix,
// skipping values whose id is already taken in table. Drawn values are
// never handed out again, even when the surrounding transaction creates
// nothing.
func (db *DB) nextID(ctx context.Context, seq, prefix, table string) (string, int64, error) {
	for {
		row, err := db.queryRow(ctx, db.sb.Update("id_sequences").
			Set("value", sq.Expr("value + 1")).
			Where(sq.Eq{"name": seq}).
			Suffix("RETURNING value"))
		if err != nil {
			return "", 0, err
		}
		var n int64
		if err := row.Scan(&n); err != nil {
			return "", 0, fmt.Errorf("sequence %s: %w", seq, err)
		}

		id := domain.FormatID(prefix, n)
		taken, err := db.exists(ctx, table, id)
		if err != nil {
			return "", 0, err
		}
		if !taken {
			return id, n, nil
		}
	}
}

func (db *DB) exists(ctx context.Context, table, id string) (bool, error) {
	row, err := db.queryRow(ctx, db.sb.Select("COUNT(*)").From(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return false, err
	}
	var n int
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// setSequence moves a sequence to at least value.
func (db *DB) setSequence(ctx context.Context, seq string, value int64) error {
	_, err := db.exec(ctx, db.sb.Insert("id_sequences").
		Columns("name", "value").
		Values(seq, value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value"))
	return err
}
