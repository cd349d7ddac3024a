package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/BuildQueue_Go/docs"
	"github.com/osse101/BuildQueue_Go/internal/clock"
	"github.com/osse101/BuildQueue_Go/internal/construction"
	"github.com/osse101/BuildQueue_Go/internal/handler"
	"github.com/osse101/BuildQueue_Go/internal/logger"
	"github.com/osse101/BuildQueue_Go/internal/metrics"
	"github.com/osse101/BuildQueue_Go/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
	ServiceName    string
	Version        string
	// Readiness components reported by /readyz
	Readiness map[string]handler.HealthChecker
	// Per-client rate limit; zero values use the defaults
	RateLimitRPS   float64
	RateLimitBurst int
	// Clock drives the abuse detector and rate limiter; nil uses the wall clock
	Clock clock.Clock
	// Events serves the live construction feed when set
	Events *sse.Hub
}

type Server struct {
	httpServer          *http.Server
	constructionService construction.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, constructionService construction.Service) *Server {
	r := chi.NewRouter()

	// Middleware runs outermost first
	detector := NewSuspiciousActivityDetector(opts.Clock)
	limiter := NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, opts.Clock)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	if opts.MaxBodyBytes > 0 {
		r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	}
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Readiness))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	constructionHandler := handler.NewConstructionHandler(constructionService)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stars/{star}", constructionHandler.HandleGetStar)
		r.Get("/stars/{star}/colonies/{colony}/buildings", constructionHandler.HandleGetBuildings)
		r.Post("/colonies/{colony}/builds", constructionHandler.HandleQueueBuild)
		r.Post("/buildings/{building}/upgrade", constructionHandler.HandleQueueUpgrade)
		r.Get("/requests/{request}/progress", constructionHandler.HandleGetProgress)
		r.Delete("/requests/{request}", constructionHandler.HandleCancel)
		if opts.Events != nil {
			r.Get("/events", sse.Handler(opts.Events))
		}
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           r,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	if opts.Events != nil {
		// Open streams never finish on their own
		httpServer.RegisterOnShutdown(opts.Events.Stop)
	}

	return &Server{
		httpServer:          httpServer,
		constructionService: constructionService,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

// Unwrap lets http.ResponseController reach the underlying writer
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
