package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/osse101/BuildQueue_Go/internal/catalog"
	"github.com/osse101/BuildQueue_Go/internal/clock"
	"github.com/osse101/BuildQueue_Go/internal/config"
	"github.com/osse101/BuildQueue_Go/internal/construction"
	"github.com/osse101/BuildQueue_Go/internal/database"
	"github.com/osse101/BuildQueue_Go/internal/database/postgres"
	"github.com/osse101/BuildQueue_Go/internal/domain"
	"github.com/osse101/BuildQueue_Go/internal/event"
	"github.com/osse101/BuildQueue_Go/internal/handler"
	"github.com/osse101/BuildQueue_Go/internal/metrics"
	"github.com/osse101/BuildQueue_Go/internal/repository"
	"github.com/osse101/BuildQueue_Go/internal/scheduler"
	"github.com/osse101/BuildQueue_Go/internal/server"
	"github.com/osse101/BuildQueue_Go/internal/sse"
	"github.com/osse101/BuildQueue_Go/internal/worker"
)

// @title Build Queue API
// @version 1.0
// @description Colony construction queue: building lists, build and upgrade orders, progress and cancellation.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	log := initLogger(cfg)
	for _, warning := range config.Warnings(cfg) {
		log.Warn("Configuration warning", "warning", warning)
	}

	loader, err := catalog.NewLoader()
	if err != nil {
		log.Error("Failed to initialize catalog loader", "error", err)
		os.Exit(1)
	}
	designs, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		log.Error("Failed to load design catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	log.Info("Design catalog loaded", "path", cfg.CatalogPath, "designs", designs.Len())

	var stars []domain.Star
	if cfg.EmpireStatePath != "" {
		if stars, err = construction.LoadEmpire(cfg.EmpireStatePath); err != nil {
			log.Error("Failed to load empire state", "path", cfg.EmpireStatePath, "error", err)
			os.Exit(1)
		}
	}

	readiness := map[string]handler.HealthChecker{}
	var (
		store     repository.EmpireStore
		revisions map[string]uint64
		closeDB   = func() {}
	)
	if cfg.PersistenceEnabled() {
		startupCtx := context.Background()
		dbPool, err := database.NewPool(startupCtx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		closeDB = dbPool.Close
		if err := database.Migrate(startupCtx, dbPool); err != nil {
			log.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
		store = postgres.NewEmpireRepository(dbPool)
		if stars, revisions, err = construction.LoadOrSeed(startupCtx, store, stars); err != nil {
			log.Error("Failed to load empire from database", "error", err)
			os.Exit(1)
		}
		readiness["database"] = database.NewPingChecker(dbPool)
	}
	log.Info(construction.LogMsgEmpireLoaded, "stars", len(stars), "persistent", store != nil)

	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), 0o755); err != nil {
		log.Error("Failed to create dead-letter directory", "error", err)
		os.Exit(1)
	}
	memoryBus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(memoryBus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.DeadLetterPath)
	if err != nil {
		log.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	metrics.NewEventMetricsCollector().Register(publisher)
	readiness["events"] = publisher

	clk := clock.NewRealClock()
	opts := construction.Options{Logger: log, Revisions: revisions}
	if cfg.ViewCacheEnabled() {
		opts.ViewCacheSize = cfg.ViewCacheSize
		opts.ViewCacheTTL = cfg.ViewCacheTTL
	}
	svc := construction.NewService(designs, stars, publisher, clk, opts)
	if store != nil {
		construction.NewPersister(svc, store).Register(publisher)
	}

	hub := sse.NewHub(clk)
	hub.Start()
	sse.NewSubscriber(hub, publisher).Subscribe()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule("settle", cfg.SettleInterval, worker.NewSettleJob(svc, cfg.SettleInterval))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   config.DefaultMaxBodyBytes,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		Readiness:      readiness,
		Clock:          clk,
		Events:         hub,
	}, svc)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			log.Error("Server failed", "error", err)
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	hub.Stop()
	sched.Stop()
	pool.Stop()
	if err := publisher.Shutdown(shutdownCtx); err != nil {
		log.Error("Event publisher shutdown failed", "error", err)
	}
	closeDB()
	log.Info("Server stopped")
}
