package inventory

import (
	"context"
	"fmt"

	"github.com/sensorfactory/nexus/internal/domain"
)

// ListSensors returns the catalog narrowed by filter, in catalog order.
func (s *Service) ListSensors(ctx context.Context, filter domain.SensorFilter) ([]domain.Sensor, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	all, err := s.sensors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListSensors: %w", err)
	}
	return domain.Filter(all, filter.Match), nil
}

// GetSensor returns the sensor with id, or nil when there is none.
func (s *Service) GetSensor(ctx context.Context, id string) (*domain.Sensor, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	sensor, err := s.sensors.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("inventory.GetSensor: %w", err)
	}
	return sensor, nil
}

// ListSensorTypes returns the fixed set of sensor types.
func (s *Service) ListSensorTypes(ctx context.Context) ([]domain.SensorType, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}
	return domain.SensorTypes(), nil
}
