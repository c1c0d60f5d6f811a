// Package sqlstore implements the repositories on database/sql for
// PostgreSQL (pgx stdlib driver) and SQLite (modernc driver).
package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/sensorfactory/nexus/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is a database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	driver string
	sb     sq.StatementBuilderType
}

// Open connects to the database selected by cfg.Driver and pings it.
func Open(ctx context.Context, cfg config.StoreConfig) (*DB, error) {
	driverName, placeholder, err := dialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// A single connection serialises writers and keeps in-memory
		// databases alive for the lifetime of the handle.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(cfg.MaxConnLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlstore: ping: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("sqlstore: enable foreign keys: %w", err)
		}
	}

	return &DB{
		DB:     sqlDB,
		driver: cfg.Driver,
		sb:     sq.StatementBuilder.PlaceholderFormat(placeholder),
	}, nil
}

// dialect maps a configured driver to its database/sql driver name and
// squirrel placeholder format.
func dialect(driver string) (string, sq.PlaceholderFormat, error) {
	switch driver {
	case config.DriverPostgres:
		return "pgx", sq.Dollar, nil
	case config.DriverSQLite:
		return "sqlite", sq.Question, nil
	default:
		return "", nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate(ctx context.Context) error {
	dialect := goose.DialectSQLite3
	if db.driver == config.DriverPostgres {
		dialect = goose.DialectPostgres
	}

	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("sqlstore: migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("sqlstore: goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("sqlstore: goose up: %w", err)
	}
	return nil
}
