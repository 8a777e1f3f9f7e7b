package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"

	"opsmonitor/internal/domain"
)

const (
	SessionsBackendPostgres = "postgres"
	SessionsBackendRedis    = "redis"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Sessions  SessionsConfig
	Telemetry TelemetryConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Host               string `env:"SERVER_HOST" envDefault:"localhost"`
	Port               int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections     int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	MaxRequestBodySize string `env:"SERVER_MAX_BODY_SIZE" envDefault:"1M"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"opsmonitor"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode, c.MaxConns,
	)
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Prefix   string `env:"REDIS_SESSION_PREFIX" envDefault:"sess"`
}

type SessionsConfig struct {
	Backend string        `env:"SESSIONS_BACKEND" envDefault:"postgres"`
	Timeout time.Duration `env:"SESSIONS_TIMEOUT" envDefault:"2s"`
}

type TelemetryConfig struct {
	MaxCapacity   int      `env:"TELEMETRY_MAX_CAPACITY" envDefault:"25000"`
	ExcludedPaths []string `env:"TELEMETRY_EXCLUDED_PATHS" envDefault:"/health,/api/v1/health" envSeparator:","`
}

type CacheConfig struct {
	PathCacheSizePow2 int `env:"PATH_CACHE_SIZE_POW2" envDefault:"20"`
}

// RateLimitConfig is the static rate-limit policy. The dashboard echoes it
// through Settings.
type RateLimitConfig struct {
	WindowMs      int64  `env:"RATE_LIMIT_WINDOW_MS" envDefault:"900000"`
	GeneralMax    int    `env:"RATE_LIMIT_GENERAL_MAX" envDefault:"100"`
	AuthMax       int    `env:"RATE_LIMIT_AUTH_MAX" envDefault:"5"`
	UploadMax     int    `env:"RATE_LIMIT_UPLOAD_MAX" envDefault:"10"`
	ExportMax     int    `env:"RATE_LIMIT_EXPORT_MAX" envDefault:"20"`
	ExpireMinutes int    `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"30"`
	BypassSecret  string `env:"RATE_LIMIT_BYPASS_SECRET"`
}

func (c *RateLimitConfig) Settings() domain.RateLimitSettings {
	return domain.RateLimitSettings{
		WindowMs: c.WindowMs,
		MaxRequests: domain.RateLimitThresholds{
			General: c.GeneralMax,
			Auth:    c.AuthMax,
			Upload:  c.UploadMax,
			Export:  c.ExportMax,
		},
	}
}

// Window returns the rate-limit window, falling back to one minute for
// non-positive values.
func (c *RateLimitConfig) Window() time.Duration {
	if c.WindowMs <= 0 {
		return time.Minute
	}
	return time.Duration(c.WindowMs) * time.Millisecond
}

type MetricsConfig struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// ExcludedPaths lists the request paths kept out of telemetry: the configured
// ones plus the Prometheus scrape path while it is served.
func (c *Config) ExcludedPaths() []string {
	paths := slices.Clone(c.Telemetry.ExcludedPaths)
	if c.Metrics.Enabled && c.Metrics.Path != "" && !slices.Contains(paths, c.Metrics.Path) {
		paths = append(paths, c.Metrics.Path)
	}
	return paths
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	switch cfg.Sessions.Backend {
	case SessionsBackendPostgres, SessionsBackendRedis:
	default:
		return nil, fmt.Errorf("unknown sessions backend %q", cfg.Sessions.Backend)
	}
	return &cfg, nil
}
