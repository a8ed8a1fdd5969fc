package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/bankledger/internal/adapter/http/handler"
	apimiddleware "github.com/iho/bankledger/internal/adapter/http/middleware"
	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
	if rec.Header().Get(apimiddleware.RequestIDHeader) == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyOnlyOnDeposits(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/provision", strings.NewReader(`{"customers":[]}`))
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-1")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if store.checkCalled {
		t.Fatalf("expected provisioning to bypass the idempotency store")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/customers/1/accounts/2/deposits", strings.NewReader(`{"cents":150}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-2")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used for deposits")
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/customers/{customer}/accounts/{account}/deposits",
		"GET /api/v1/customers/{customer}/balance",
		"GET /api/v1/accounts/{account}/balance",
		"GET /api/v1/accounts/{account}/history",
		"POST /api/v1/interest/runs/",
		"GET /api/v1/interest/runs/last",
		"GET /api/v1/ledger/consistency",
		"POST /api/v1/admin/provision",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered, have %v", route, seen)
		}
	}
}

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "bankledger_http_requests_in_flight") {
		t.Fatalf("expected http metrics to be exported")
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		LedgerHandler:      handler.NewLedgerHandler(stubLedgerService{}),
		AccountHandler:     handler.NewAccountHandler(stubAccountService{}),
		InterestHandler:    handler.NewInterestHandler(stubInterestService{}),
		ConsistencyHandler: handler.NewConsistencyHandler(stubConsistencyService{}),
		ProvisionHandler:   handler.NewProvisionHandler(stubProvisioningService{}),
		HealthHandler:      handler.NewHealthHandler(nil, nil),
		Logger:             zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubLedgerService struct{}

func (stubLedgerService) Deposit(ctx context.Context, input usecase.DepositInput) (*domain.HistoryEntry, error) {
	return &domain.HistoryEntry{AccountNumber: input.AccountNumber, Ts: time.Now(), ChangeAmount: input.Cents}, nil
}

type stubAccountService struct{}

func (stubAccountService) AccountBalance(ctx context.Context, accountNumber int64) (int64, error) {
	return 0, nil
}

func (stubAccountService) CustomerBalance(ctx context.Context, customerNumber int64) (int64, error) {
	return 0, nil
}

func (stubAccountService) RecentHistory(ctx context.Context, accountNumber int64, n int) ([]*domain.HistoryEntry, error) {
	return nil, nil
}

type stubInterestService struct{}

func (stubInterestService) RunInterestAccrual(ctx context.Context) (*domain.InterestRun, error) {
	return &domain.InterestRun{}, nil
}

func (stubInterestService) LastRun(ctx context.Context) (*domain.InterestRun, error) {
	return nil, domain.ErrNoResults
}

type stubConsistencyService struct{}

func (stubConsistencyService) VerifyConsistency(ctx context.Context) (*usecase.ConsistencyReport, error) {
	return &usecase.ConsistencyReport{Consistent: true}, nil
}

type stubProvisioningService struct{}

func (stubProvisioningService) Provision(ctx context.Context, input usecase.ProvisionInput) (*usecase.ProvisionResult, error) {
	return nil, domain.ErrNoCustomersRequested
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
