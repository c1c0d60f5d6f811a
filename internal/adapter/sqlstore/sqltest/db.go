// Package sqltest opens migrated and seeded SQL stores for tests.
package sqltest

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sensorfactory/nexus/internal/adapter/sqlstore"
	"github.com/sensorfactory/nexus/internal/config"
	"github.com/sensorfactory/nexus/internal/seed"
)

// Driver opens a fresh seeded store.
type Driver struct {
	Name string
	Open func(t *testing.T) *sqlstore.Store
}

// Drivers lists the backends repository tests run against. PostgreSQL is
// skipped in -short mode.
func Drivers() []Driver {
	return []Driver{
		{Name: config.DriverSQLite, Open: OpenSQLite},
		{Name: config.DriverPostgres, Open: OpenPostgres},
	}
}

// OpenSQLite returns a store on a fresh SQLite file in t.TempDir().
func OpenSQLite(t *testing.T) *sqlstore.Store {
	t.Helper()
	return open(t, config.StoreConfig{
		Driver:       config.DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "nexus.db"),
		MaxOpenConns: 1,
	})
}

var (
	once     sync.Once
	adminDSN string
	dsnFmt   string
	initErr  error
	dbSeq    atomic.Int64
)

// OpenPostgres starts a shared PostgreSQL container (once for the entire
// test run) and returns a store on a freshly created database.
func OpenPostgres(t *testing.T) *sqlstore.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres tests need docker; skipped in -short mode")
	}

	once.Do(func() {
		adminDSN, dsnFmt, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("sqltest: failed to start postgres: %v", initErr)
	}

	name := fmt.Sprintf("nexus_%d", dbSeq.Add(1))
	if err := createDatabase(adminDSN, name); err != nil {
		t.Fatalf("sqltest: %v", err)
	}

	return open(t, config.StoreConfig{
		Driver:       config.DriverPostgres,
		DSN:          fmt.Sprintf(dsnFmt, name),
		MaxOpenConns: 4,
	})
}

func open(t *testing.T, cfg config.StoreConfig) *sqlstore.Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sqlstore.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("sqltest: open: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		t.Fatalf("sqltest: migrate: %v", err)
	}

	ds, err := seed.Default()
	if err != nil {
		t.Fatalf("sqltest: seed: %v", err)
	}

	store := sqlstore.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := store.SeedIfEmpty(ctx, log, ds); err != nil {
		t.Fatalf("sqltest: seed: %v", err)
	}
	return store
}

func startContainer() (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", "", fmt.Errorf("get mapped port: %w", err)
	}

	base := fmt.Sprintf("postgres://testuser:testpass@%s:%s/", host, port.Port())
	return base + "testdb?sslmode=disable", base + "%s?sslmode=disable", nil
}

func createDatabase(dsn, name string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE DATABASE " + name); err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	return nil
}
