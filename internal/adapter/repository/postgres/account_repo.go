package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/infrastructure/postgres/generated"
	"github.com/iho/bankledger/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return newAccountRepositoryWithDB(pool)
}

func newAccountRepositoryWithDB(db generated.DBTX) *AccountRepository {
	return &AccountRepository{queries: generated.New(db)}
}

// GetForChange reads the balance and the transaction timestamp.
func (r *AccountRepository) GetForChange(ctx context.Context, tx usecase.Transaction, customerNumber, accountNumber int64) (int64, time.Time, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	row, err := exactlyOne(queries.GetAccountForChange(ctx, generated.GetAccountForChangeParams{
		CustomerNumber: customerNumber,
		AccountNumber:  accountNumber,
	}))
	if err != nil {
		return 0, time.Time{}, notFound(err)
	}

	return row.Balance, row.TxTime.Time.UTC(), nil
}

// GetForInterest re-reads the full account row inside tx.
func (r *AccountRepository) GetForInterest(ctx context.Context, tx usecase.Transaction, customerNumber, accountNumber int64) (*domain.Account, time.Time, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	row, err := exactlyOne(queries.GetAccountForInterest(ctx, generated.GetAccountForInterestParams{
		CustomerNumber: customerNumber,
		AccountNumber:  accountNumber,
	}))
	if err != nil {
		return nil, time.Time{}, notFound(err)
	}

	return &domain.Account{
		CustomerNumber:          row.CustomerNumber,
		AccountNumber:           row.AccountNumber,
		Type:                    domain.AccountType(row.AccountType),
		Balance:                 row.Balance,
		CreationTime:            row.CreationTime.Time.UTC(),
		LastInterestCalculation: pgTimestamptzToPtr(row.LastInterestCalculation),
	}, row.TxTime.Time.UTC(), nil
}

// UpdateBalance writes the new balance of an account.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, customerNumber, accountNumber, balance int64) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	n, err := queries.UpdateAccountBalance(ctx, generated.UpdateAccountBalanceParams{
		CustomerNumber: customerNumber,
		AccountNumber:  accountNumber,
		Balance:        balance,
	})
	if err != nil {
		return err
	}

	return checkAffected(n)
}

// SetLastInterestCalculation stamps the account as credited at the given time.
func (r *AccountRepository) SetLastInterestCalculation(ctx context.Context, tx usecase.Transaction, customerNumber, accountNumber int64, at time.Time) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	n, err := queries.SetLastInterestCalculation(ctx, generated.SetLastInterestCalculationParams{
		CustomerNumber:          customerNumber,
		AccountNumber:           accountNumber,
		LastInterestCalculation: timeToPgTimestamptz(at),
	})
	if err != nil {
		return err
	}

	return checkAffected(n)
}

// GetBalance looks an account up by its globally unique number.
func (r *AccountRepository) GetBalance(ctx context.Context, accountNumber int64) (int64, error) {
	return exactlyOne(r.queries.GetAccountBalance(ctx, accountNumber))
}

// GetCustomerBalance sums all accounts of a customer.
func (r *AccountRepository) GetCustomerBalance(ctx context.Context, customerNumber int64) (int64, error) {
	return exactlyOne(r.queries.GetCustomerBalance(ctx, customerNumber))
}

// ListInterestCandidates selects up to limit accounts due for interest with
// an account number greater than after, in account number order.
func (r *AccountRepository) ListInterestCandidates(ctx context.Context, policy domain.EligibilityPolicy, after int64, limit int) ([]domain.InterestCandidate, error) {
	rows, err := r.queries.ListInterestCandidates(ctx, generated.ListInterestCandidatesParams{
		Legacy: policy.Legacy(),
		After:  after,
		Limit:  int32(limit),
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.InterestCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, domain.InterestCandidate{
			CustomerNumber:          row.CustomerNumber,
			AccountNumber:           row.AccountNumber,
			LastInterestCalculation: pgTimestamptzToPtr(row.LastInterestCalculation),
		})
	}

	return candidates, nil
}

// SumBalances returns the sum of all account balances.
func (r *AccountRepository) SumBalances(ctx context.Context) (int64, error) {
	return r.queries.SumAccountBalances(ctx)
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNoResults) {
		return fmt.Errorf("%w: %w", domain.ErrAccountNotFound, err)
	}
	return err
}

func checkAffected(n int64) error {
	switch {
	case n == 0:
		return fmt.Errorf("%w: %w", domain.ErrAccountNotFound, domain.ErrNoResults)
	case n > 1:
		return fmt.Errorf("%w: updated %d rows", domain.ErrTooManyResults, n)
	}
	return nil
}
