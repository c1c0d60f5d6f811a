// Package inventory implements the sensor catalog operations.
package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/notify"
)

// sensorRepo defines the catalog repository interface needed by inventory service.
type sensorRepo interface {
	List(ctx context.Context) ([]domain.Sensor, error)
	GetByID(ctx context.Context, id string) (*domain.Sensor, error)
	Create(ctx context.Context, s domain.Sensor) (*domain.Sensor, error)
	Update(ctx context.Context, id string, params domain.SensorUpdateParams) (*domain.Sensor, error)
	Delete(ctx context.Context, id string) error
}

// delayer simulates backend latency.
type delayer interface {
	Read(ctx context.Context) error
	Write(ctx context.Context) error
}

// Service implements inventory operations.
type Service struct {
	log     *slog.Logger
	sensors sensorRepo
	delay   delayer
	notify  notify.Notifier
	now     func() time.Time
}

// NewService creates a new inventory service instance.
func NewService(
	logger *slog.Logger,
	sensors sensorRepo,
	delay delayer,
	notifier notify.Notifier,
) *Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Service{
		log:     logger.With("service", "inventory"),
		sensors: sensors,
		delay:   delay,
		notify:  notifier,
		now:     time.Now,
	}
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now())
}
