package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/infrastructure/postgres/generated"
	"github.com/iho/bankledger/internal/usecase"
)

// ShardRepository implements usecase.ShardRepository.
type ShardRepository struct {
	queries *generated.Queries
}

// NewShardRepository creates a new ShardRepository.
func NewShardRepository(pool *pgxpool.Pool) *ShardRepository {
	return newShardRepositoryWithDB(pool)
}

func newShardRepositoryWithDB(db generated.DBTX) *ShardRepository {
	return &ShardRepository{queries: generated.New(db)}
}

// Add adds cents to a single shard row.
func (r *ShardRepository) Add(ctx context.Context, tx usecase.Transaction, shard, cents int64) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	n, err := queries.AddToShard(ctx, generated.AddToShardParams{
		Shard:  shard,
		Amount: cents,
	})
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("aggregate shard %d: %w", shard, domain.ErrShardMissing)
	}

	return nil
}

// Sum returns the total over all shards.
func (r *ShardRepository) Sum(ctx context.Context) (int64, error) {
	return r.queries.SumShards(ctx)
}

// List returns every shard ordered by shard number.
func (r *ShardRepository) List(ctx context.Context) ([]domain.AggregateShard, error) {
	rows, err := r.queries.ListShards(ctx)
	if err != nil {
		return nil, err
	}

	shards := make([]domain.AggregateShard, 0, len(rows))
	for _, row := range rows {
		shards = append(shards, domain.AggregateShard{Shard: row.Shard, Balance: row.Balance})
	}

	return shards, nil
}
