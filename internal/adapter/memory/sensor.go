package memory

import (
	"context"
	"fmt"

	"github.com/sensorfactory/nexus/internal/domain"
)

// SensorRepo stores catalog sensors.
type SensorRepo struct {
	c *collection[domain.Sensor]
}

func newSensorRepo(items []domain.Sensor) *SensorRepo {
	return &SensorRepo{c: newCollection(items, domain.PrefixSensor,
		func(s domain.Sensor) string { return s.ID }, nil)}
}

func (r *SensorRepo) List(_ context.Context) ([]domain.Sensor, error) {
	return r.c.list(), nil
}

func (r *SensorRepo) GetByID(_ context.Context, id string) (*domain.Sensor, error) {
	s, ok := r.c.get(id)
	if !ok {
		return nil, fmt.Errorf("sensor %s: %w", id, domain.ErrNotFound)
	}
	return &s, nil
}

// Create assigns a fresh id and appends the sensor.
func (r *SensorRepo) Create(_ context.Context, s domain.Sensor) (*domain.Sensor, error) {
	created := r.c.insert(s, func(v *domain.Sensor, id string) { v.ID = id })
	return &created, nil
}

func (r *SensorRepo) Update(_ context.Context, id string, params domain.SensorUpdateParams) (*domain.Sensor, error) {
	s, ok := r.c.update(id, params.Apply)
	if !ok {
		return nil, fmt.Errorf("sensor %s: %w", id, domain.ErrNotFound)
	}
	return &s, nil
}

func (r *SensorRepo) Delete(_ context.Context, id string) error {
	if !r.c.remove(id) {
		return fmt.Errorf("sensor %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
