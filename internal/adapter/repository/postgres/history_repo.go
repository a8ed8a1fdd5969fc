package postgres

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/infrastructure/postgres/generated"
	"github.com/iho/bankledger/internal/usecase"
)

// HistoryRepository implements usecase.HistoryRepository.
type HistoryRepository struct {
	queries *generated.Queries
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return newHistoryRepositoryWithDB(pool)
}

func newHistoryRepositoryWithDB(db generated.DBTX) *HistoryRepository {
	return &HistoryRepository{queries: generated.New(db)}
}

// Append inserts a history entry.
func (r *HistoryRepository) Append(ctx context.Context, tx usecase.Transaction, entry *domain.HistoryEntry) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.InsertHistory(ctx, generated.InsertHistoryParams{
		AccountNumber: entry.AccountNumber,
		Ts:            timeToPgTimestamptz(entry.Ts),
		Memo:          memoToPgText(entry.Memo),
		ChangeAmount:  entry.ChangeAmount,
	})
}

// ListRecent returns the n most recent entries of an account, newest first.
func (r *HistoryRepository) ListRecent(ctx context.Context, accountNumber int64, n int) ([]*domain.HistoryEntry, error) {
	limit := int32(math.MaxInt32)
	if n < math.MaxInt32 {
		limit = int32(n)
	}

	rows, err := r.queries.ListRecentHistory(ctx, generated.ListRecentHistoryParams{
		AccountNumber: accountNumber,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToHistoryEntry(row))
	}

	return entries, nil
}

func rowToHistoryEntry(row generated.AccountHistory) *domain.HistoryEntry {
	return &domain.HistoryEntry{
		AccountNumber: row.AccountNumber,
		Ts:            row.Ts.Time.UTC(),
		ChangeAmount:  row.ChangeAmount,
		Memo:          row.Memo.String,
	}
}
