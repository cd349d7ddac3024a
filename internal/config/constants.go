package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvCatalogPath     = "CATALOG_PATH"
	EnvEmpireStatePath = "EMPIRE_STATE_PATH"
	EnvViewCacheSize   = "VIEW_CACHE_SIZE"
	EnvViewCacheTTL    = "VIEW_CACHE_TTL"
	EnvSettleInterval  = "SETTLE_INTERVAL"
	EnvEventMaxRetries = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay = "EVENT_RETRY_DELAY"
	EnvDeadLetterPath  = "DEAD_LETTER_PATH"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvRateLimitRPS    = "RATE_LIMIT_RPS"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"

	EnvDatabaseURL       = "DATABASE_URL"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "build-queue"
	DefaultVersion         = "dev"
	DefaultCatalogPath     = "configs/designs.yaml"
	DefaultEmpireStatePath = "configs/empire.yaml"
	DefaultViewCacheSize   = 256
	DefaultViewCacheTTL    = 30 * time.Second
	DefaultSettleInterval  = time.Second
	DefaultEventMaxRetries = 5
	DefaultEventRetryDelay = 2 * time.Second
	DefaultDeadLetterPath  = "logs/event_deadletter.jsonl"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
	DefaultRateLimitRPS    = 20.0
	DefaultRateLimitBurst  = 40

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour
)
