package fleet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// ListDeployed returns the deployed sensors narrowed by filter.
func (s *Service) ListDeployed(ctx context.Context, filter domain.DeployedSensorFilter) ([]domain.DeployedSensor, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	all, err := s.deployed.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fleet.ListDeployed: %w", err)
	}
	return domain.Filter(all, filter.Match), nil
}

// GetDeployed returns the deployed sensor with id, or nil when there is none.
func (s *Service) GetDeployed(ctx context.Context, id string) (*domain.DeployedSensor, error) {
	if err := s.delay.Read(ctx); err != nil {
		return nil, err
	}

	d, err := s.deployed.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fleet.GetDeployed: %w", err)
	}
	return d, nil
}

// UpdateStatusInput moves a deployed sensor to a new status.
type UpdateStatusInput struct {
	ID     string
	Status domain.SensorStatus
}

// Validate validates the status input.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be Online, Offline or Maintenance"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateStatus sets the status of a deployed sensor and stamps its last
// communication time. Any transition is allowed. An unknown id yields a nil
// sensor and an "Update Failed" notification.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.DeployedSensor, error) {
	if err := s.delay.Write(ctx); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.deployed.UpdateStatus(ctx, input.ID, input.Status, s.now().UTC())
	if err != nil {
		if isNotFound(err) {
			s.log.WarnContext(ctx, "status update skipped: not found", slog.String("sensor_id", input.ID))
			s.notify.Notify(ctx, notify.Failure("Update Failed", "Sensor not found."))
			return nil, nil
		}
		return nil, fmt.Errorf("fleet.UpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "sensor status updated",
		slog.String("sensor_id", updated.ID),
		slog.String("status", updated.Status.String()),
	)
	s.notify.Notify(ctx, notify.Success("Status Updated",
		fmt.Sprintf("%s is now %s.", updated.ID, updated.Status)))

	return updated, nil
}
