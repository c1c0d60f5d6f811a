package memory

import (
	"context"
	"fmt"

	"github.com/sensorfactory/nexus/internal/domain"
)

// OrderRepo stores sales orders. It is read-only.
type OrderRepo struct {
	c *collection[domain.Order]
}

func newOrderRepo(items []domain.Order) *OrderRepo {
	return &OrderRepo{c: newCollection(items, domain.PrefixOrder,
		func(o domain.Order) string { return o.ID }, domain.Order.Clone)}
}

func (r *OrderRepo) List(_ context.Context) ([]domain.Order, error) {
	return r.c.list(), nil
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.c.get(id)
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return &o, nil
}

func (r *OrderRepo) ListByClient(_ context.Context, clientID string) ([]domain.Order, error) {
	return domain.Filter(r.c.list(), func(o domain.Order) bool { return o.ClientID == clientID }), nil
}

// SalesRepo serves the monthly sales series. It is read-only.
type SalesRepo struct {
	points []domain.SalesDataPoint
}

func (r *SalesRepo) List(_ context.Context) ([]domain.SalesDataPoint, error) {
	return append([]domain.SalesDataPoint(nil), r.points...), nil
}
