package config

import (
	"fmt"
	"strings"
)

// Validate checks cross-field rules and normalizes the store driver name.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Latency.Read < 0 || c.Latency.Write < 0 {
		return fmt.Errorf("latency must be >= 0 (read %s, write %s)", c.Latency.Read, c.Latency.Write)
	}

	if c.Notify.FeedSize <= 0 {
		return fmt.Errorf("notify.feed_size must be > 0 (got %d)", c.Notify.FeedSize)
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverPostgres, DriverSQLite:
		if s.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", s.Driver)
		}
		if s.MaxOpenConns <= 0 {
			return fmt.Errorf("max_open_conns must be > 0 (got %d)", s.MaxOpenConns)
		}
		return nil
	default:
		return fmt.Errorf("unknown driver %q (want memory, postgres or sqlite)", s.Driver)
	}
}
