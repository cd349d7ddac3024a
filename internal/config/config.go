package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	CatalogPath string `validate:"required"`
	// EmpireStatePath seeds the in-memory empire; empty starts with no stars
	EmpireStatePath string

	ViewCacheSize  int           `validate:"min=0"`
	ViewCacheTTL   time.Duration `validate:"min=0"`
	SettleInterval time.Duration `validate:"gt=0"`

	EventMaxRetries int           `validate:"min=0"`
	EventRetryDelay time.Duration `validate:"gt=0"`
	DeadLetterPath  string        `validate:"required"`

	ShutdownTimeout time.Duration `validate:"gt=0"`

	// DatabaseURL enables Postgres persistence; empty keeps the empire in memory only
	DatabaseURL       string
	DBMaxConns        int           `validate:"min=1"`
	DBMaxConnIdleTime time.Duration `validate:"min=0"`
	DBMaxConnLifetime time.Duration `validate:"min=0"`

	// APIKey guards /api routes; empty disables the check
	APIKey         string
	TrustedProxies []string

	// Per-client token bucket for the HTTP API
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"min=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		CatalogPath:     getEnv(EnvCatalogPath, DefaultCatalogPath),
		EmpireStatePath: getEnv(EnvEmpireStatePath, DefaultEmpireStatePath),
		DeadLetterPath:  getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),
		APIKey:          getEnv(EnvAPIKey, ""),
		DatabaseURL:     getEnv(EnvDatabaseURL, ""),
		TrustedProxies:  splitList(getEnv(EnvTrustedProxies, "")),
	}

	var err error
	if cfg.Port, err = getEnvInt(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.ViewCacheSize, err = getEnvInt(EnvViewCacheSize, DefaultViewCacheSize); err != nil {
		return nil, err
	}
	if cfg.EventMaxRetries, err = getEnvInt(EnvEventMaxRetries, DefaultEventMaxRetries); err != nil {
		return nil, err
	}
	if cfg.DBMaxConns, err = getEnvInt(EnvDBMaxConns, DefaultDBMaxConns); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt(EnvRateLimitBurst, DefaultRateLimitBurst); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat(EnvRateLimitRPS, DefaultRateLimitRPS); err != nil {
		return nil, err
	}
	if cfg.ViewCacheTTL, err = getEnvDuration(EnvViewCacheTTL, DefaultViewCacheTTL); err != nil {
		return nil, err
	}
	if cfg.SettleInterval, err = getEnvDuration(EnvSettleInterval, DefaultSettleInterval); err != nil {
		return nil, err
	}
	if cfg.EventRetryDelay, err = getEnvDuration(EnvEventRetryDelay, DefaultEventRetryDelay); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout); err != nil {
		return nil, err
	}

	if cfg.DBMaxConnIdleTime, err = getEnvDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnLifetime, err = getEnvDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ViewCacheEnabled reports whether assembled views should be cached
func (c *Config) ViewCacheEnabled() bool {
	return c.ViewCacheSize > 0 && c.ViewCacheTTL > 0
}

// PersistenceEnabled reports whether star snapshots are stored in Postgres
func (c *Config) PersistenceEnabled() bool {
	return c.DatabaseURL != ""
}

// AddSource reports whether logs should carry source locations
func (c *Config) AddSource() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return f, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// splitList parses a comma-separated list, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
