package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/iho/bankledger/internal/domain"
)

// InterestConfig tunes the interest accrual job.
type InterestConfig struct {
	Rate      decimal.Decimal
	BatchSize int
	Workers   int
	Policy    domain.EligibilityPolicy
}

func (c InterestConfig) withDefaults() InterestConfig {
	if c.Rate.IsZero() {
		c.Rate = domain.DefaultInterestRate
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultInterestBatchSize
	}
	if c.Workers <= 0 {
		c.Workers = DefaultInterestWorkers
	}
	if c.Policy == "" {
		c.Policy = domain.EligibilityCalendarMonth
	}
	return c
}

// InterestUseCase credits monthly interest to every eligible account once
// per calendar month.
type InterestUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	ledger      *LedgerUseCase
	runStore    InterestRunStore
	idGen       IDGenerator
	cfg         InterestConfig
	logger      zerolog.Logger
	metrics     LedgerMetrics
	now         func() time.Time
}

// NewInterestUseCase creates a new InterestUseCase. runStore may be nil.
func NewInterestUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	ledger *LedgerUseCase,
	runStore InterestRunStore,
	idGen IDGenerator,
	cfg InterestConfig,
	opts ...Option,
) *InterestUseCase {
	o := newOptions(opts)
	return &InterestUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		ledger:      ledger,
		runStore:    runStore,
		idGen:       idGen,
		cfg:         cfg.withDefaults(),
		logger:      o.logger,
		metrics:     o.metrics,
		now:         o.now,
	}
}

// firstCandidatePage precedes every account number.
const firstCandidatePage int64 = -1

type interestResult struct {
	done    bool
	outcome domain.InterestOutcome
	cents   int64
}

// RunInterestAccrual selects eligible accounts in batches and applies
// interest to each one in its own transaction until no eligible account is
// left that this run has not already visited. On error the partial run is
// returned together with the error.
func (uc *InterestUseCase) RunInterestAccrual(ctx context.Context) (*domain.InterestRun, error) {
	run := &domain.InterestRun{
		ID:        uc.idGen.Generate(),
		StartedAt: uc.now(),
	}
	logger := uc.logger.With().Str("run_id", run.ID).Logger()
	logger.Info().
		Str("policy", string(uc.cfg.Policy)).
		Str("rate", uc.cfg.Rate.String()).
		Int("batch_size", uc.cfg.BatchSize).
		Msg("interest run started")

	// Selection pages by account number. A pass that reaches the end of the
	// eligible set having applied something starts over from the first page,
	// so the run ends once a whole pass finds no unvisited account.
	visited := make(map[int64]struct{})
	after, progressed := firstCandidatePage, false
	for {
		candidates, err := uc.accountRepo.ListInterestCandidates(ctx, uc.cfg.Policy, after, uc.cfg.BatchSize)
		if err != nil {
			run.FinishedAt = uc.now()
			return run, fmt.Errorf("select interest candidates: %w", err)
		}

		if len(candidates) == 0 {
			if !progressed {
				break
			}
			after, progressed = firstCandidatePage, false
			continue
		}
		after = candidates[len(candidates)-1].AccountNumber

		fresh := make([]domain.InterestCandidate, 0, len(candidates))
		for _, c := range candidates {
			if _, seen := visited[c.AccountNumber]; seen {
				continue
			}
			visited[c.AccountNumber] = struct{}{}
			fresh = append(fresh, c)
		}
		if len(fresh) == 0 {
			continue
		}
		progressed = true

		results := make([]interestResult, len(fresh))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(uc.cfg.Workers)
		for i, c := range fresh {
			g.Go(func() error {
				outcome, cents, err := uc.ApplyInterest(gctx, c)
				if err != nil {
					return fmt.Errorf("apply interest to account %d: %w", c.AccountNumber, err)
				}
				results[i] = interestResult{done: true, outcome: outcome, cents: cents}
				return nil
			})
		}
		err = g.Wait()

		for _, r := range results {
			if r.done {
				run.Record(r.outcome, r.cents)
			}
		}
		if err != nil {
			run.FinishedAt = uc.now()
			logger.Error().Err(err).Int("visited", run.Visited()).Msg("interest run aborted")
			return run, err
		}
	}

	run.FinishedAt = uc.now()
	uc.metrics.InterestRunCompleted(run)

	if uc.runStore != nil {
		if err := uc.runStore.SaveLast(ctx, run); err != nil {
			logger.Warn().Err(err).Msg("failed to store interest run report")
		}
	}

	logger.Info().
		Int("applied", run.Applied).
		Int("already_applied", run.AlreadyApplied).
		Int("not_found", run.NotFound).
		Int64("credited_cents", run.CreditedCents).
		Dur("took", run.FinishedAt.Sub(run.StartedAt)).
		Msg("interest run finished")

	return run, nil
}

// ApplyInterest credits one account if its LastInterestCalculation still
// matches the value observed at selection. It returns the credited cents,
// which are zero unless the outcome is domain.InterestApplied.
func (uc *InterestUseCase) ApplyInterest(ctx context.Context, c domain.InterestCandidate) (domain.InterestOutcome, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var (
		outcome domain.InterestOutcome
		cents   int64
	)
	err := uc.txManager.RunInTx(ctx, func(ctx context.Context, tx Transaction) error {
		outcome, cents = domain.InterestNotFound, 0

		acc, txTime, err := uc.accountRepo.GetForInterest(ctx, tx, c.CustomerNumber, c.AccountNumber)
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if !domain.SameCalculation(acc.LastInterestCalculation, c.LastInterestCalculation) {
			outcome = domain.InterestAlreadyApplied
			return nil
		}

		credit := domain.ComputeInterest(acc.Balance, uc.cfg.Rate)
		newBalance, err := acc.ApplyChange(credit)
		if err != nil {
			return err
		}

		if _, err := uc.ledger.applyChange(ctx, tx, balanceChange{
			customerNumber: c.CustomerNumber,
			accountNumber:  c.AccountNumber,
			cents:          credit,
			newBalance:     newBalance,
			memo:           domain.MemoMonthlyInterest,
			ts:             txTime,
		}); err != nil {
			return err
		}

		if err := uc.accountRepo.SetLastInterestCalculation(ctx, tx, c.CustomerNumber, c.AccountNumber, txTime); err != nil {
			return fmt.Errorf("set last interest calculation: %w", err)
		}

		outcome, cents = domain.InterestApplied, credit
		return nil
	})
	if err != nil {
		return outcome, 0, err
	}

	uc.metrics.InterestOutcome(outcome, cents)
	uc.logger.Debug().
		Int64("account", c.AccountNumber).
		Str("outcome", outcome.String()).
		Int64("cents", cents).
		Msg("interest apply finished")

	return outcome, cents, nil
}

// LastRun returns the report of the most recent completed run.
func (uc *InterestUseCase) LastRun(ctx context.Context) (*domain.InterestRun, error) {
	if uc.runStore == nil {
		return nil, domain.ErrNoResults
	}
	return uc.runStore.GetLast(ctx)
}
