package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// CreateClient adds a client under a fresh id.
func (s *Service) CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	if err := s.delay.Write(ctx); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.clients.Create(ctx, domain.Client{
		Name:    input.Name,
		Contact: input.Contact,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("client.CreateClient: %w", err)
	}

	s.log.InfoContext(ctx, "client created", slog.String("client_id", created.ID))
	s.notify.Notify(ctx, notify.Success("Client Added",
		fmt.Sprintf("%s has been added as a client.", created.Name)))

	return created, nil
}
