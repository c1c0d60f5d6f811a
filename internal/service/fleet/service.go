// Package fleet implements operations on deployed sensors and their
// maintenance alerts.
package fleet

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// deployedRepo defines the deployed sensor repository interface needed by fleet service.
type deployedRepo interface {
	List(ctx context.Context) ([]domain.DeployedSensor, error)
	GetByID(ctx context.Context, id string) (*domain.DeployedSensor, error)
	UpdateStatus(ctx context.Context, id string, status domain.SensorStatus, at time.Time) (*domain.DeployedSensor, error)
}

// alertRepo defines the alert repository interface needed by fleet service.
type alertRepo interface {
	List(ctx context.Context) ([]domain.MaintenanceAlert, error)
	Resolve(ctx context.Context, id string) (*domain.MaintenanceAlert, error)
}

// delayer simulates backend latency.
type delayer interface {
	Read(ctx context.Context) error
	Write(ctx context.Context) error
}

// Service implements fleet operations.
type Service struct {
	log      *slog.Logger
	deployed deployedRepo
	alerts   alertRepo
	delay    delayer
	notify   notify.Notifier
	now      func() time.Time
}

// NewService creates a new fleet service instance.
func NewService(
	logger *slog.Logger,
	deployed deployedRepo,
	alerts alertRepo,
	delay delayer,
	notifier notify.Notifier,
) *Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Service{
		log:      logger.With("service", "fleet"),
		deployed: deployed,
		alerts:   alerts,
		delay:    delay,
		notify:   notifier,
		now:      time.Now,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
