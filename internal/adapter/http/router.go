package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/erpledger/internal/adapter/http/handler"
	"github.com/iho/erpledger/internal/adapter/http/middleware"
	"github.com/iho/erpledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	StatementHandler      *handler.StatementHandler
	DeductionHandler      *handler.DeductionHandler
	ReconciliationHandler *handler.ReconciliationHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	IdempotencyTTL        time.Duration
	// RateLimiter throttles the full reconciliation report per client IP.
	RateLimiter *middleware.RateLimiter
	// Logger enables request logging when set.
	Logger *zerolog.Logger
	// MetricsHandler defaults to promhttp.Handler().
	MetricsHandler http.Handler
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(*cfg.Logger).Wrap)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Holders
		r.Route("/holders/{id}", func(r chi.Router) {
			r.Get("/ledger", cfg.StatementHandler.Ledger)
			r.Get("/reconciliation", cfg.ReconciliationHandler.Holder)
		})

		// Employees
		r.Route("/employees/{id}", func(r chi.Router) {
			r.Get("/net", cfg.StatementHandler.EmployeeNet)
			r.Get("/deductions", cfg.DeductionHandler.List)
			r.Post("/deductions", cfg.DeductionHandler.Create)
		})

		r.Delete("/deductions/{id}", cfg.DeductionHandler.Delete)

		// Reconciliation
		r.Route("/reconciliation", func(r chi.Router) {
			if cfg.RateLimiter != nil {
				r.With(cfg.RateLimiter.Limit).Get("/", cfg.ReconciliationHandler.Report)
			} else {
				r.Get("/", cfg.ReconciliationHandler.Report)
			}
			r.Get("/latest", cfg.ReconciliationHandler.Latest)
		})
	})

	return r
}
