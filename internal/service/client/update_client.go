package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// UpdateClient merges the non-nil fields of input into the client. An
// unknown id yields a nil client and an "Update Failed" notification.
func (s *Service) UpdateClient(ctx context.Context, input UpdateClientInput) (*domain.Client, error) {
	if err := s.delay.Write(ctx); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.clients.Update(ctx, input.ID, domain.ClientUpdateParams{
		Name:    input.Name,
		Contact: input.Contact,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		if isNotFound(err) {
			s.log.WarnContext(ctx, "client update skipped: not found", slog.String("client_id", input.ID))
			s.notify.Notify(ctx, notify.Failure("Update Failed", "Client not found."))
			return nil, nil
		}
		return nil, fmt.Errorf("client.UpdateClient: %w", err)
	}

	s.log.InfoContext(ctx, "client updated", slog.String("client_id", updated.ID))
	s.notify.Notify(ctx, notify.Success("Client Updated",
		fmt.Sprintf("%s's information has been updated.", updated.Name)))

	return updated, nil
}
