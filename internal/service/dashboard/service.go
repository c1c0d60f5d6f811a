// Package dashboard aggregates the landing page overview across the
// inventory, sales, client and fleet collections.
package dashboard

import (
	"context"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
)

type sensorRepo interface {
	List(ctx context.Context) ([]domain.Sensor, error)
}

type orderRepo interface {
	List(ctx context.Context) ([]domain.Order, error)
}

type clientRepo interface {
	List(ctx context.Context) ([]domain.Client, error)
}

type salesRepo interface {
	List(ctx context.Context) ([]domain.SalesDataPoint, error)
}

type alertRepo interface {
	List(ctx context.Context) ([]domain.MaintenanceAlert, error)
}

type delayer interface {
	Read(ctx context.Context) error
}

const (
	recentAlertsLimit = 3
	topProductsLimit  = 5
)

// Service builds dashboard summaries.
type Service struct {
	log     *slog.Logger
	sensors sensorRepo
	orders  orderRepo
	clients clientRepo
	sales   salesRepo
	alerts  alertRepo
	delay   delayer
}

// NewService creates a new dashboard service instance.
func NewService(
	logger *slog.Logger,
	sensors sensorRepo,
	orders orderRepo,
	clients clientRepo,
	sales salesRepo,
	alerts alertRepo,
	delay delayer,
) *Service {
	return &Service{
		log:     logger.With("service", "dashboard"),
		sensors: sensors,
		orders:  orders,
		clients: clients,
		sales:   sales,
		alerts:  alerts,
		delay:   delay,
	}
}
