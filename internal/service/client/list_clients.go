package client

import (
	"context"
	"fmt"

	"github.com/sensorfactory/nexus/internal/domain"
)

// ListClients returns the clients narrowed by filter, in collection order.
func (s *Service) ListClients(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	all, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.ListClients: %w", err)
	}
	return domain.Filter(all, filter.Match), nil
}

// GetClient returns the client with id, or nil when there is none.
func (s *Service) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("client.GetClient: %w", err)
	}
	return c, nil
}
