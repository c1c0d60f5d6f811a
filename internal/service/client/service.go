// Package client implements client record operations.
package client

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// clientRepo defines the client repository interface needed by client service.
type clientRepo interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, c domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, params domain.ClientUpdateParams) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// delayer simulates backend latency.
type delayer interface {
	Read(ctx context.Context) error
	Write(ctx context.Context) error
}

// Service implements client operations.
type Service struct {
	log     *slog.Logger
	clients clientRepo
	delay   delayer
	notify  notify.Notifier
}

// NewService creates a new client service instance.
func NewService(
	logger *slog.Logger,
	clients clientRepo,
	delay delayer,
	notifier notify.Notifier,
) *Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Service{
		log:     logger.With("service", "client"),
		clients: clients,
		delay:   delay,
		notify:  notifier,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
