package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	httpAdapter "github.com/iho/bankledger/internal/adapter/http"
	"github.com/iho/bankledger/internal/adapter/http/handler"
	"github.com/iho/bankledger/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/bankledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/bankledger/internal/adapter/repository/redis"
	"github.com/iho/bankledger/internal/infrastructure/config"
	"github.com/iho/bankledger/internal/infrastructure/logger"
	"github.com/iho/bankledger/internal/infrastructure/metrics"
	"github.com/iho/bankledger/internal/infrastructure/postgres"
	"github.com/iho/bankledger/internal/infrastructure/redis"
	"github.com/iho/bankledger/internal/infrastructure/scheduler"
	"github.com/iho/bankledger/internal/usecase"
)

const serviceName = "bankledger"

// interestRunTTL keeps the last run report across a month of restarts.
const interestRunTTL = 45 * 24 * time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	root, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: serviceName})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create logger")
	}
	log.Logger = root

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, base zerolog.Logger) error {
	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	base.Info().Msg("connected to postgres")

	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return err
		}
	}

	// Connect to Redis (optional)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer redisClient.Close()
		base.Info().Msg("connected to redis")
	}

	// Initialize repositories
	retrier := postgresRepo.NewRetrier(
		postgresRepo.WithMaxRetries(cfg.TxMaxRetries),
		postgresRepo.WithRetryLogger(logger.Component(base, "postgres")),
	)
	txManager := postgresRepo.NewTxManager(pool, retrier)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	historyRepo := postgresRepo.NewHistoryRepository(pool)
	shardRepo := postgresRepo.NewShardRepository(pool)
	provisioningRepo := postgresRepo.NewProvisioningRepository()

	var (
		idempotencyStore usecase.IdempotencyStore
		runStore         usecase.InterestRunStore
		redisPinger      handler.Pinger
	)
	if redisClient != nil {
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		runStore = redisRepo.NewInterestRunStore(redisRepo.NewCache(redisClient), interestRunTTL)
		redisPinger = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	// Initialize use cases
	opts := []usecase.Option{
		usecase.WithLogger(logger.Component(base, "ledger")),
		usecase.WithMetrics(metrics.New()),
	}
	shards := usecase.NewShardSet(shardRepo, cfg.AggregateBalanceShards)
	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, historyRepo, shards, opts...)
	accountUC := usecase.NewAccountUseCase(accountRepo, historyRepo, opts...)
	interestUC := usecase.NewInterestUseCase(txManager, accountRepo, ledgerUC, runStore,
		postgresRepo.NewULIDGenerator(), interestConfig(cfg), opts...)
	consistencyUC := usecase.NewConsistencyUseCase(accountRepo, shards, opts...)
	provisioningUC := usecase.NewProvisioningUseCase(txManager, provisioningRepo,
		postgresRepo.NewRandomNumberGenerator(), shards, opts...)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler:      handler.NewLedgerHandler(ledgerUC),
		AccountHandler:     handler.NewAccountHandler(accountUC),
		InterestHandler:    handler.NewInterestHandler(interestUC),
		ConsistencyHandler: handler.NewConsistencyHandler(consistencyUC),
		ProvisionHandler:   handler.NewProvisionHandler(provisioningUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisPinger),
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		RateLimiter:        rateLimiter,
		Logger:             logger.Component(base, "http"),
	})

	server := newHTTPServer(cfg, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		base.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		base.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if rateLimiter != nil {
		g.Go(func() error {
			rateLimiter.RunCleanup(gctx, 10*time.Minute, time.Hour)
			return nil
		})
	}

	if cfg.InterestScheduleInterval > 0 {
		s := scheduler.NewInterestScheduler(scheduler.Config{
			Runner:   interestUC,
			Logger:   logger.Component(base, "interest_scheduler"),
			Interval: cfg.InterestScheduleInterval,
		})
		g.Go(func() error {
			if err := s.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}

func interestConfig(cfg *config.Config) usecase.InterestConfig {
	return usecase.InterestConfig{
		Rate:      cfg.Rate(),
		BatchSize: cfg.InterestBatchSize,
		Workers:   cfg.InterestWorkers,
		Policy:    cfg.EligibilityPolicy(),
	}
}

func newHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}
