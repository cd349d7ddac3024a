package main

import (
	"log/slog"

	"github.com/osse101/BuildQueue_Go/internal/config"
	"github.com/osse101/BuildQueue_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) *slog.Logger {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.AddSource(),
	)

	return logger.InitLogger(loggerConfig)
}
