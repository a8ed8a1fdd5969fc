package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/bankledger/internal/adapter/http/handler"
	"github.com/iho/bankledger/internal/adapter/http/middleware"
	"github.com/iho/bankledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler      *handler.LedgerHandler
	AccountHandler     *handler.AccountHandler
	InterestHandler    *handler.InterestHandler
	ConsistencyHandler *handler.ConsistencyHandler
	ProvisionHandler   *handler.ProvisionHandler
	HealthHandler      *handler.HealthHandler

	// Optional
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	MetricsHandler   http.Handler
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Handle("/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers/{customer}", func(r chi.Router) {
			deposit := http.HandlerFunc(cfg.LedgerHandler.Deposit)
			if cfg.IdempotencyStore != nil {
				idempotency := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger)
				r.With(idempotency.Wrap).Post("/accounts/{account}/deposits", deposit)
			} else {
				r.Post("/accounts/{account}/deposits", deposit)
			}
			r.Get("/balance", cfg.AccountHandler.CustomerBalance)
		})

		r.Route("/accounts/{account}", func(r chi.Router) {
			r.Get("/balance", cfg.AccountHandler.Balance)
			r.Get("/history", cfg.AccountHandler.History)
		})

		r.Route("/interest/runs", func(r chi.Router) {
			r.Post("/", cfg.InterestHandler.Run)
			r.Get("/last", cfg.InterestHandler.LastRun)
		})

		r.Get("/ledger/consistency", cfg.ConsistencyHandler.Check)
		r.Post("/admin/provision", cfg.ProvisionHandler.Provision)
	})

	return r
}
