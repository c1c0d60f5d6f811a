package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sensorfactory/nexus/internal/domain"
)

var clientColumns = []string{"id", "name", "contact", "email", "phone", "address"}

// ClientRepo stores clients.
type ClientRepo struct {
	db *DB
}

func NewClientRepo(db *DB) *ClientRepo {
	return &ClientRepo{db: db}
}

func (r *ClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	return r.list(ctx, r.db.sb.Select(clientColumns...).From("clients").OrderBy("pos"))
}

func (r *ClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	row, err := r.db.queryRow(ctx, r.db.sb.Select(clientColumns...).From("clients").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, mapError(err, "client", id)
	}
	c, err := scanClient(row)
	if err != nil {
		return nil, mapError(err, "client", id)
	}
	return &c, nil
}

// GetByIDs returns the clients matching ids in collection order. Unknown
// ids are skipped.
func (r *ClientRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Client, error) {
	if len(ids) == 0 {
		return []domain.Client{}, nil
	}
	return r.list(ctx, r.db.sb.Select(clientColumns...).From("clients").
		Where(sq.Eq{"id": ids}).OrderBy("pos"))
}

func (r *ClientRepo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Client, error) {
	rows, err := r.db.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("list clients: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return out, nil
}

// Create assigns a fresh id and appends the client.
func (r *ClientRepo) Create(ctx context.Context, c domain.Client) (*domain.Client, error) {
	var created domain.Client
	err := NewTxManager(r.db).RunInTx(ctx, func(ctx context.Context) error {
		id, pos, err := r.db.nextID(ctx, seqClients, domain.PrefixClient, "clients")
		if err != nil {
			return err
		}
		c.ID = id
		if err := r.insert(ctx, c, pos); err != nil {
			return mapError(err, "client", id)
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ClientRepo) insert(ctx context.Context, c domain.Client, pos int64) error {
	_, err := r.db.exec(ctx, r.db.sb.Insert("clients").
		Columns(append(clientColumns, "pos")...).
		Values(c.ID, c.Name, c.Contact, c.Email, c.Phone, c.Address, pos))
	return err
}

func (r *ClientRepo) Update(ctx context.Context, id string, params domain.ClientUpdateParams) (*domain.Client, error) {
	b := r.db.sb.Update("clients").Where(sq.Eq{"id": id})
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Contact != nil {
		b = b.Set("contact", *params.Contact)
	}
	if params.Email != nil {
		b = b.Set("email", *params.Email)
	}
	if params.Phone != nil {
		b = b.Set("phone", *params.Phone)
	}
	if params.Address != nil {
		b = b.Set("address", *params.Address)
	}

	if err := r.db.updateOne(ctx, b, "clients", "client", id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	return r.db.deleteOne(ctx, "clients", "client", id)
}

func scanClient(row rowScanner) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.Contact, &c.Email, &c.Phone, &c.Address)
	return c, err
}
