package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/sensorfactory/nexus/internal/domain"
)

// DeployedSensorRepo stores deployed sensors.
type DeployedSensorRepo struct {
	c *collection[domain.DeployedSensor]
}

func newDeployedSensorRepo(items []domain.DeployedSensor) *DeployedSensorRepo {
	return &DeployedSensorRepo{c: newCollection(items, "",
		func(d domain.DeployedSensor) string { return d.ID }, domain.DeployedSensor.Clone)}
}

func (r *DeployedSensorRepo) List(_ context.Context) ([]domain.DeployedSensor, error) {
	return r.c.list(), nil
}

func (r *DeployedSensorRepo) GetByID(_ context.Context, id string) (*domain.DeployedSensor, error) {
	d, ok := r.c.get(id)
	if !ok {
		return nil, fmt.Errorf("deployed sensor %s: %w", id, domain.ErrNotFound)
	}
	return &d, nil
}

// UpdateStatus sets the status and stamps the last communication time.
func (r *DeployedSensorRepo) UpdateStatus(_ context.Context, id string, status domain.SensorStatus, at time.Time) (*domain.DeployedSensor, error) {
	d, ok := r.c.update(id, func(d domain.DeployedSensor) domain.DeployedSensor {
		d.Status = status
		d.LastCommunication = at
		return d
	})
	if !ok {
		return nil, fmt.Errorf("deployed sensor %s: %w", id, domain.ErrNotFound)
	}
	return &d, nil
}

// AlertRepo stores maintenance alerts.
type AlertRepo struct {
	c *collection[domain.MaintenanceAlert]
}

func newAlertRepo(items []domain.MaintenanceAlert) *AlertRepo {
	return &AlertRepo{c: newCollection(items, "",
		func(a domain.MaintenanceAlert) string { return a.ID }, nil)}
}

func (r *AlertRepo) List(_ context.Context) ([]domain.MaintenanceAlert, error) {
	return r.c.list(), nil
}

// Resolve marks an alert resolved.
func (r *AlertRepo) Resolve(_ context.Context, id string) (*domain.MaintenanceAlert, error) {
	a, ok := r.c.update(id, func(a domain.MaintenanceAlert) domain.MaintenanceAlert {
		a.Resolved = true
		return a
	})
	if !ok {
		return nil, fmt.Errorf("alert %s: %w", id, domain.ErrNotFound)
	}
	return &a, nil
}
