package sqlstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/seed"
)

// Store groups the SQL repositories.
type Store struct {
	db *DB
	tx *TxManager

	Sensors *SensorRepo
	Clients *ClientRepo
	Orders  *OrderRepo
	Sales   *SalesRepo
	Fleet   *DeployedSensorRepo
	Alerts  *AlertRepo
	Users   *UserRepo
}

// NewStore builds the repositories over db.
func NewStore(db *DB) *Store {
	return &Store{
		db:      db,
		tx:      NewTxManager(db),
		Sensors: NewSensorRepo(db),
		Clients: NewClientRepo(db),
		Orders:  NewOrderRepo(db),
		Sales:   NewSalesRepo(db),
		Fleet:   NewDeployedSensorRepo(db),
		Alerts:  NewAlertRepo(db),
		Users:   NewUserRepo(db),
	}
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SeedIfEmpty loads ds in one transaction when the database holds no
// sensors and no sequences yet. It reports whether anything was written.
func (s *Store) SeedIfEmpty(ctx context.Context, log *slog.Logger, ds *seed.Dataset) (bool, error) {
	row, err := s.db.queryRow(ctx, s.db.sb.Select("COUNT(*)").From("id_sequences"))
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("seed: count sequences: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.seed(ctx, ds)
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}

	log.InfoContext(ctx, "database seeded",
		slog.Int("sensors", len(ds.Sensors)),
		slog.Int("clients", len(ds.Clients)),
		slog.Int("orders", len(ds.Orders)),
		slog.Int("deployed", len(ds.Deployed)),
	)
	return true, nil
}

func (s *Store) seed(ctx context.Context, ds *seed.Dataset) error {
	var maxSensor, maxClient, maxOrder int64

	for i, v := range ds.Sensors {
		pos := seqOrIndex(domain.PrefixSensor, v.ID, i, &maxSensor)
		if err := s.Sensors.insert(ctx, v, pos); err != nil {
			return mapError(err, "sensor", v.ID)
		}
	}
	for i, v := range ds.Clients {
		pos := seqOrIndex(domain.PrefixClient, v.ID, i, &maxClient)
		if err := s.Clients.insert(ctx, v, pos); err != nil {
			return mapError(err, "client", v.ID)
		}
	}
	for i, v := range ds.Orders {
		pos := seqOrIndex(domain.PrefixOrder, v.ID, i, &maxOrder)
		if err := s.Orders.Create(ctx, v, pos); err != nil {
			return err
		}
	}
	for i, v := range ds.Sales {
		if err := s.Sales.Create(ctx, v, int64(i)); err != nil {
			return fmt.Errorf("sales %s: %w", v.Month, err)
		}
	}
	for i, v := range ds.Deployed {
		if err := s.Fleet.Create(ctx, v, int64(i)); err != nil {
			return err
		}
	}
	for i, v := range ds.Alerts {
		if err := s.Alerts.Create(ctx, v, int64(i)); err != nil {
			return err
		}
	}
	for i, v := range ds.Users {
		if err := s.Users.Create(ctx, v, int64(i)); err != nil {
			return err
		}
	}

	for seq, value := range map[string]int64{
		seqSensors: maxSensor,
		seqClients: maxClient,
		seqOrders:  maxOrder,
	} {
		if err := s.db.setSequence(ctx, seq, value); err != nil {
			return fmt.Errorf("sequence %s: %w", seq, err)
		}
	}
	return nil
}

// seqOrIndex returns the numeric part of a prefixed id, or the slice index
// for ids outside the scheme, and tracks the largest value seen.
func seqOrIndex(prefix, id string, i int, hi *int64) int64 {
	n, ok := domain.ParseIDSeq(prefix, id)
	if !ok {
		n = int64(i)
	}
	if n > *hi {
		*hi = n
	}
	return n
}
