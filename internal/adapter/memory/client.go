package memory

import (
	"context"
	"fmt"

	"github.com/sensorfactory/nexus/internal/domain"
)

// ClientRepo stores clients.
type ClientRepo struct {
	c *collection[domain.Client]
}

func newClientRepo(items []domain.Client) *ClientRepo {
	return &ClientRepo{c: newCollection(items, domain.PrefixClient,
		func(c domain.Client) string { return c.ID }, nil)}
}

func (r *ClientRepo) List(_ context.Context) ([]domain.Client, error) {
	return r.c.list(), nil
}

func (r *ClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.c.get(id)
	if !ok {
		return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return &c, nil
}

// GetByIDs returns the clients found among ids, in collection order.
func (r *ClientRepo) GetByIDs(_ context.Context, ids []string) ([]domain.Client, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	return domain.Filter(r.c.list(), func(c domain.Client) bool {
		_, ok := want[c.ID]
		return ok
	}), nil
}

// Create assigns a fresh id and appends the client.
func (r *ClientRepo) Create(_ context.Context, c domain.Client) (*domain.Client, error) {
	created := r.c.insert(c, func(v *domain.Client, id string) { v.ID = id })
	return &created, nil
}

func (r *ClientRepo) Update(_ context.Context, id string, params domain.ClientUpdateParams) (*domain.Client, error) {
	c, ok := r.c.update(id, params.Apply)
	if !ok {
		return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return &c, nil
}

func (r *ClientRepo) Delete(_ context.Context, id string) error {
	if !r.c.remove(id) {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
