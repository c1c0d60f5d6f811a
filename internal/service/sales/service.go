// Package sales implements read-only order and revenue operations.
package sales

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
)

// orderRepo defines the order repository interface needed by sales service.
type orderRepo interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Order, error)
}

// salesRepo defines the monthly sales repository interface needed by sales service.
type salesRepo interface {
	List(ctx context.Context) ([]domain.SalesDataPoint, error)
}

// clientRepo defines the client lookups needed to enrich orders.
type clientRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Client, error)
}

// delayer simulates backend latency.
type delayer interface {
	Read(ctx context.Context) error
	Write(ctx context.Context) error
}

// Service implements sales operations.
type Service struct {
	log     *slog.Logger
	orders  orderRepo
	sales   salesRepo
	clients clientRepo
	delay   delayer
}

// NewService creates a new sales service instance.
func NewService(
	logger *slog.Logger,
	orders orderRepo,
	sales salesRepo,
	clients clientRepo,
	delay delayer,
) *Service {
	return &Service{
		log:     logger.With("service", "sales"),
		orders:  orders,
		sales:   sales,
		clients: clients,
		delay:   delay,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
