package postgres

import (
	"context"
	"fmt"

	"github.com/iho/bankledger/internal/infrastructure/postgres/generated"
	"github.com/iho/bankledger/internal/usecase"
)

// ProvisioningRepository implements usecase.ProvisioningRepository with
// TRUNCATE and COPY.
type ProvisioningRepository struct{}

// NewProvisioningRepository creates a new ProvisioningRepository.
func NewProvisioningRepository() *ProvisioningRepository {
	return &ProvisioningRepository{}
}

// Reset empties every ledger table.
func (r *ProvisioningRepository) Reset(ctx context.Context, tx usecase.Transaction) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	if err := queries.ResetLedger(ctx); err != nil {
		return fmt.Errorf("failed to reset ledger: %w", err)
	}

	return nil
}

// Seed copies customers, accounts and history rows and creates the shard rows.
func (r *ProvisioningRepository) Seed(ctx context.Context, tx usecase.Transaction, batch *usecase.ProvisionBatch) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	customers := make([]generated.InsertCustomersParams, 0, len(batch.Customers))
	for _, c := range batch.Customers {
		customers = append(customers, generated.InsertCustomersParams{
			CustomerNumber: c.Number,
			LastName:       nameToPgText(c.LastName),
			FirstName:      nameToPgText(c.FirstName),
		})
	}
	if _, err := queries.InsertCustomers(ctx, customers); err != nil {
		return fmt.Errorf("failed to copy customers: %w", err)
	}

	accounts := make([]generated.InsertAccountsParams, 0, len(batch.Accounts))
	for _, a := range batch.Accounts {
		accounts = append(accounts, generated.InsertAccountsParams{
			CustomerNumber: a.CustomerNumber,
			AccountNumber:  a.AccountNumber,
			CreationTime:   timeToPgTimestamptz(a.CreationTime),
			AccountType:    int64(a.Type),
			Balance:        a.Balance,
		})
	}
	if _, err := queries.InsertAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("failed to copy accounts: %w", err)
	}

	history := make([]generated.InsertHistoryBatchParams, 0, len(batch.History))
	for _, h := range batch.History {
		history = append(history, generated.InsertHistoryBatchParams{
			AccountNumber: h.AccountNumber,
			Ts:            timeToPgTimestamptz(h.Ts),
			Memo:          memoToPgText(h.Memo),
			ChangeAmount:  h.ChangeAmount,
		})
	}
	if _, err := queries.InsertHistoryBatch(ctx, history); err != nil {
		return fmt.Errorf("failed to copy history: %w", err)
	}

	if batch.Shards > 0 {
		if err := queries.SeedShards(ctx, int64(batch.Shards)); err != nil {
			return fmt.Errorf("failed to seed aggregate shards: %w", err)
		}
	}

	return nil
}
