package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/bankledger/internal/domain"
)

// ConsistencyReport is the outcome of one verification.
type ConsistencyReport struct {
	AccountTotal  int64
	ShardTotal    int64
	Shards        int
	ShardBalances []domain.AggregateShard
	Consistent    bool
	Skipped       bool
	CheckedAt     time.Time
}

// ConsistencyUseCase compares the sum of account balances with the sum of
// the aggregate shards. It never writes.
type ConsistencyUseCase struct {
	accountRepo AccountRepository
	shards      *ShardSet
	logger      zerolog.Logger
	metrics     LedgerMetrics
	now         func() time.Time
}

// NewConsistencyUseCase creates a new ConsistencyUseCase.
func NewConsistencyUseCase(accountRepo AccountRepository, shards *ShardSet, opts ...Option) *ConsistencyUseCase {
	o := newOptions(opts)
	return &ConsistencyUseCase{
		accountRepo: accountRepo,
		shards:      shards,
		logger:      o.logger,
		metrics:     o.metrics,
		now:         o.now,
	}
}

// VerifyConsistency returns domain.ErrInconsistentBalances, together with
// the report, when the two sums differ. With shards disabled the check is
// skipped.
func (uc *ConsistencyUseCase) VerifyConsistency(ctx context.Context) (*ConsistencyReport, error) {
	report := &ConsistencyReport{
		Shards:    uc.shards.Count(),
		CheckedAt: uc.now(),
	}

	if !uc.shards.Enabled() {
		report.Skipped = true
		report.Consistent = true
		uc.metrics.ConsistencyChecked(report)
		return report, nil
	}

	accountTotal, err := uc.accountRepo.SumBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum account balances: %w", err)
	}

	shardTotal, err := uc.shards.Total(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum aggregate shards: %w", err)
	}

	balances, err := uc.shards.Balances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list aggregate shards: %w", err)
	}

	report.AccountTotal = accountTotal
	report.ShardTotal = shardTotal
	report.ShardBalances = balances
	report.Consistent = accountTotal == shardTotal
	uc.metrics.ConsistencyChecked(report)

	if !report.Consistent {
		uc.logger.Error().
			Int64("account_total", accountTotal).
			Int64("shard_total", shardTotal).
			Int64("difference", accountTotal-shardTotal).
			Msg("aggregate balance mismatch")
		return report, fmt.Errorf("%w: accounts=%d shards=%d",
			domain.ErrInconsistentBalances, accountTotal, shardTotal)
	}

	return report, nil
}
