package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/bankledger/internal/domain"
)

// InterestRunner runs one interest accrual pass.
type InterestRunner interface {
	RunInterestAccrual(ctx context.Context) (*domain.InterestRun, error)
}

// Config for InterestScheduler.
type Config struct {
	Runner   InterestRunner
	Logger   zerolog.Logger
	Interval time.Duration
	// RunOnStart triggers a pass before the first tick.
	RunOnStart bool
}

// InterestScheduler runs the interest job on a fixed interval. Repeated
// passes within a month credit nothing, so the interval only bounds how
// late in a month an account is credited.
type InterestScheduler struct {
	runner     InterestRunner
	logger     zerolog.Logger
	interval   time.Duration
	runOnStart bool
}

// NewInterestScheduler creates a new InterestScheduler.
func NewInterestScheduler(cfg Config) *InterestScheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}

	return &InterestScheduler{
		runner:     cfg.Runner,
		logger:     cfg.Logger.With().Str("component", "interest_scheduler").Logger(),
		interval:   cfg.Interval,
		runOnStart: cfg.RunOnStart,
	}
}

// Start runs until ctx is cancelled.
func (s *InterestScheduler) Start(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.interval).
		Bool("run_on_start", s.runOnStart).
		Msg("interest scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.tick(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("interest scheduler shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *InterestScheduler) tick(ctx context.Context) {
	run, err := s.runner.RunInterestAccrual(ctx)
	if err != nil {
		// The next tick retries; accounts credited before the error stay credited.
		s.logger.Error().Err(err).Msg("scheduled interest run failed")
		return
	}

	s.logger.Debug().
		Str("run_id", run.ID).
		Int("applied", run.Applied).
		Msg("scheduled interest run finished")
}
