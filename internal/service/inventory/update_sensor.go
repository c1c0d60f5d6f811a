package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// UpdateSensor merges the non-nil fields of input into the sensor and
// re-stamps lastUpdated. An unknown id is not an error: it yields a nil
// sensor and an "Update Failed" notification.
func (s *Service) UpdateSensor(ctx context.Context, input UpdateSensorInput) (*domain.Sensor, error) {
	if err := s.delay.Write(ctx); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.sensors.Update(ctx, input.ID, domain.SensorUpdateParams{
		Name:        input.Name,
		Type:        input.Type,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		LastUpdated: s.today(),
	})
	if err != nil {
		if isNotFound(err) {
			s.log.WarnContext(ctx, "sensor update skipped: not found", slog.String("sensor_id", input.ID))
			s.notify.Notify(ctx, notify.Failure("Update Failed", "Sensor not found."))
			return nil, nil
		}
		return nil, fmt.Errorf("inventory.UpdateSensor: %w", err)
	}

	s.log.InfoContext(ctx, "sensor updated", slog.String("sensor_id", updated.ID))
	s.notify.Notify(ctx, notify.Success("Sensor Updated",
		fmt.Sprintf("%s has been updated.", updated.Name)))

	return updated, nil
}
