package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// CreateSensor adds a sensor to the catalog under a fresh id and stamps
// lastUpdated with today's date.
func (s *Service) CreateSensor(ctx context.Context, input CreateSensorInput) (*domain.Sensor, error) {
	if err := s.delay.Write(ctx); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.sensors.Create(ctx, domain.Sensor{
		Name:        input.Name,
		Type:        input.Type,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		LastUpdated: s.today(),
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.CreateSensor: %w", err)
	}

	s.log.InfoContext(ctx, "sensor created",
		slog.String("sensor_id", created.ID),
		slog.String("type", created.Type.String()),
	)
	s.notify.Notify(ctx, notify.Success("Sensor Added",
		fmt.Sprintf("%s has been added to inventory.", created.Name)))

	return created, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
