package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/notify"
)

// DeleteClient removes a client. Orders keep their client id. It reports
// false, with a "Delete Failed" notification, when the id is unknown.
func (s *Service) DeleteClient(ctx context.Context, id string) (bool, error) {
	if err := s.delay.Write(ctx); err != nil {
		return false, err
	}

	c, err := s.clients.GetByID(ctx, id)
	if err == nil {
		err = s.clients.Delete(ctx, id)
	}
	if err != nil {
		if isNotFound(err) {
			s.log.WarnContext(ctx, "client delete skipped: not found", slog.String("client_id", id))
			s.notify.Notify(ctx, notify.Failure("Delete Failed", "Client not found."))
			return false, nil
		}
		return false, fmt.Errorf("client.DeleteClient: %w", err)
	}

	s.log.InfoContext(ctx, "client deleted", slog.String("client_id", id))
	s.notify.Notify(ctx, notify.Success("Client Deleted",
		fmt.Sprintf("%s has been removed from clients.", c.Name)))

	return true, nil
}
