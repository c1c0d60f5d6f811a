package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Auth      AuthConfig      `yaml:"auth"`
	Latency   LatencyConfig   `yaml:"latency"`
	Session   SessionConfig   `yaml:"session"`
	Notify    NotifyConfig    `yaml:"notify"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StoreConfig selects the repository backend. The memory driver keeps the
// seeded collections in process and resets on restart.
type StoreConfig struct {
	Driver          string        `yaml:"driver"             env:"STORE_DRIVER"             env-default:"memory"`
	DSN             string        `yaml:"dsn"                env:"STORE_DSN"`
	SeedPath        string        `yaml:"seed_path"          env:"STORE_SEED_PATH"`
	MaxOpenConns    int           `yaml:"max_open_conns"     env:"STORE_MAX_OPEN_CONNS"     env-default:"10"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"STORE_MAX_CONN_LIFETIME"  env-default:"1h"`
}

// AuthConfig holds access-token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"sensorfactory"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"8h"`
}

// LatencyConfig holds the simulated backend latency applied by every service.
type LatencyConfig struct {
	Read  time.Duration `yaml:"read"  env:"LATENCY_READ"  env-default:"500ms"`
	Write time.Duration `yaml:"write" env:"LATENCY_WRITE" env-default:"1000ms"`
}

// SessionConfig holds settings of the persisted CLI session.
type SessionConfig struct {
	Path string `yaml:"path" env:"SESSION_PATH" env-default:".sensorctl/session.json"`
}

// NotifyConfig holds settings of the in-memory notification feed.
type NotifyConfig struct {
	FeedSize int `yaml:"feed_size" env:"NOTIFY_FEED_SIZE" env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// RateLimitConfig holds per-IP limits.
type RateLimitConfig struct {
	LoginPerMinute  int           `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
