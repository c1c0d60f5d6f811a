package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sensorfactory/nexus/internal/adapter/memory"
	"github.com/sensorfactory/nexus/internal/adapter/sqlstore"
	jwtauth "github.com/sensorfactory/nexus/internal/auth"
	"github.com/sensorfactory/nexus/internal/config"
	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/latency"
	"github.com/sensorfactory/nexus/internal/notify"
	"github.com/sensorfactory/nexus/internal/seed"
	"github.com/sensorfactory/nexus/internal/service/auth"
	"github.com/sensorfactory/nexus/internal/service/client"
	"github.com/sensorfactory/nexus/internal/service/dashboard"
	"github.com/sensorfactory/nexus/internal/service/fleet"
	"github.com/sensorfactory/nexus/internal/service/inventory"
	"github.com/sensorfactory/nexus/internal/service/sales"
)

type sensorRepo interface {
	List(ctx context.Context) ([]domain.Sensor, error)
	GetByID(ctx context.Context, id string) (*domain.Sensor, error)
	Create(ctx context.Context, s domain.Sensor) (*domain.Sensor, error)
	Update(ctx context.Context, id string, params domain.SensorUpdateParams) (*domain.Sensor, error)
	Delete(ctx context.Context, id string) error
}

type clientRepo interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Client, error)
	Create(ctx context.Context, c domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, params domain.ClientUpdateParams) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type orderRepo interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Order, error)
}

type salesRepo interface {
	List(ctx context.Context) ([]domain.SalesDataPoint, error)
}

type deployedRepo interface {
	List(ctx context.Context) ([]domain.DeployedSensor, error)
	GetByID(ctx context.Context, id string) (*domain.DeployedSensor, error)
	UpdateStatus(ctx context.Context, id string, status domain.SensorStatus, at time.Time) (*domain.DeployedSensor, error)
}

type alertRepo interface {
	List(ctx context.Context) ([]domain.MaintenanceAlert, error)
	Resolve(ctx context.Context, id string) (*domain.MaintenanceAlert, error)
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// repositories is the driver-independent view of a store.
type repositories struct {
	sensors  sensorRepo
	clients  clientRepo
	orders   orderRepo
	sales    salesRepo
	deployed deployedRepo
	alerts   alertRepo
	users    userRepo
	ping     func(ctx context.Context) error
	close    func() error
}

// Backend holds the domain services over one store.
type Backend struct {
	Driver    string
	Auth      *auth.Service
	Inventory *inventory.Service
	Clients   *client.Service
	Sales     *sales.Service
	Fleet     *fleet.Service
	Dashboard *dashboard.Service
	Feed      *notify.Feed

	repos *repositories
}

// NewBackend opens the configured store, seeding it on first use, and builds
// the services. Notifications go to the in-memory feed, the log and extra.
func NewBackend(ctx context.Context, cfg config.Config, logger *slog.Logger, extra ...notify.Notifier) (*Backend, error) {
	ds, err := loadDataset(cfg.Store.SeedPath)
	if err != nil {
		return nil, err
	}

	repos, err := openRepositories(ctx, cfg.Store, logger, ds)
	if err != nil {
		return nil, err
	}

	feed := notify.NewFeed(cfg.Notify.FeedSize)
	notifier := notify.NewMulti(append([]notify.Notifier{feed, notify.NewLogNotifier(logger)}, extra...)...)
	delay := latency.New(cfg.Latency)
	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &Backend{
		Driver:    cfg.Store.Driver,
		Auth:      auth.NewService(logger, repos.users, jwt, delay, notifier),
		Inventory: inventory.NewService(logger, repos.sensors, delay, notifier),
		Clients:   client.NewService(logger, repos.clients, delay, notifier),
		Sales:     sales.NewService(logger, repos.orders, repos.sales, repos.clients, delay),
		Fleet:     fleet.NewService(logger, repos.deployed, repos.alerts, delay, notifier),
		Dashboard: dashboard.NewService(logger, repos.sensors, repos.orders, repos.clients, repos.sales, repos.alerts, delay),
		Feed:      feed,
		repos:     repos,
	}, nil
}

// Ping checks the store.
func (b *Backend) Ping(ctx context.Context) error { return b.repos.ping(ctx) }

// Close releases the store.
func (b *Backend) Close() error { return b.repos.close() }

func loadDataset(path string) (*seed.Dataset, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.Load(path)
}

func openRepositories(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger, ds *seed.Dataset) (*repositories, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		st := memory.New(ds)
		return &repositories{
			sensors:  st.Sensors,
			clients:  st.Clients,
			orders:   st.Orders,
			sales:    st.Sales,
			deployed: st.Fleet,
			alerts:   st.Alerts,
			users:    st.Users,
			ping:     st.Ping,
			close:    func() error { return nil },
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		db, err := sqlstore.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		st := sqlstore.NewStore(db)
		if _, err := st.SeedIfEmpty(ctx, logger, ds); err != nil {
			st.Close()
			return nil, err
		}
		return &repositories{
			sensors:  st.Sensors,
			clients:  st.Clients,
			orders:   st.Orders,
			sales:    st.Sales,
			deployed: st.Fleet,
			alerts:   st.Alerts,
			users:    st.Users,
			ping:     st.Ping,
			close:    st.Close,
		}, nil

	default:
		return nil, fmt.Errorf("app: unknown store driver %q", cfg.Driver)
	}
}
