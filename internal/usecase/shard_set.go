package usecase

import (
	"context"
	"math/rand/v2"

	"github.com/iho/bankledger/internal/domain"
)

// ShardSet is the running total of all balances spread over a fixed number
// of aggregate_balance rows. A count of zero disables it.
type ShardSet struct {
	repo  ShardRepository
	count int
	pick  func(n int) int
}

// NewShardSet creates a shard set over count shards.
func NewShardSet(repo ShardRepository, count int) *ShardSet {
	if count < 0 {
		count = 0
	}
	return &ShardSet{
		repo:  repo,
		count: count,
		pick:  rand.IntN,
	}
}

// Enabled reports whether shard writes happen at all.
func (s *ShardSet) Enabled() bool {
	return s.count > 0
}

// Count returns the number of shards.
func (s *ShardSet) Count() int {
	return s.count
}

// Record adds cents to one uniformly chosen shard inside tx.
func (s *ShardSet) Record(ctx context.Context, tx Transaction, cents int64) error {
	if !s.Enabled() {
		return nil
	}
	return s.repo.Add(ctx, tx, int64(s.pick(s.count)), cents)
}

// Total returns the sum over all shards.
func (s *ShardSet) Total(ctx context.Context) (int64, error) {
	if !s.Enabled() {
		return 0, domain.ErrShardsDisabled
	}
	return s.repo.Sum(ctx)
}

// Balances returns every shard row.
func (s *ShardSet) Balances(ctx context.Context) ([]domain.AggregateShard, error) {
	if !s.Enabled() {
		return nil, domain.ErrShardsDisabled
	}
	return s.repo.List(ctx)
}
