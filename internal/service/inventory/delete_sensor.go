package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/notify"
)

// DeleteSensor removes a sensor from the catalog. It reports false, with a
// "Delete Failed" notification, when the id is unknown.
func (s *Service) DeleteSensor(ctx context.Context, id string) (bool, error) {
	if err := s.delay.Write(ctx); err != nil {
		return false, err
	}

	sensor, err := s.sensors.GetByID(ctx, id)
	if err == nil {
		err = s.sensors.Delete(ctx, id)
	}
	if err != nil {
		if isNotFound(err) {
			s.log.WarnContext(ctx, "sensor delete skipped: not found", slog.String("sensor_id", id))
			s.notify.Notify(ctx, notify.Failure("Delete Failed", "Sensor not found."))
			return false, nil
		}
		return false, fmt.Errorf("inventory.DeleteSensor: %w", err)
	}

	s.log.InfoContext(ctx, "sensor deleted", slog.String("sensor_id", id))
	s.notify.Notify(ctx, notify.Success("Sensor Deleted",
		fmt.Sprintf("%s has been removed from inventory.", sensor.Name)))

	return true, nil
}
