package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/iho/bankledger/internal/domain"
)

// AccountUseCase answers balance and history queries.
type AccountUseCase struct {
	accountRepo AccountRepository
	historyRepo HistoryRepository
	logger      zerolog.Logger
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, historyRepo HistoryRepository, opts ...Option) *AccountUseCase {
	o := newOptions(opts)
	return &AccountUseCase{
		accountRepo: accountRepo,
		historyRepo: historyRepo,
		logger:      o.logger,
	}
}

// AccountBalance returns the balance of an account in cents.
func (uc *AccountUseCase) AccountBalance(ctx context.Context, accountNumber int64) (int64, error) {
	if err := domain.ValidateNumbers(0, accountNumber); err != nil {
		return 0, err
	}

	balance, err := uc.accountRepo.GetBalance(ctx, accountNumber)
	if err != nil {
		uc.logSchemaDefect(err, "account_balance", accountNumber)
		return 0, err
	}

	return balance, nil
}

// CustomerBalance returns the sum of all account balances of a customer.
func (uc *AccountUseCase) CustomerBalance(ctx context.Context, customerNumber int64) (int64, error) {
	if err := domain.ValidateNumbers(customerNumber, 0); err != nil {
		return 0, err
	}

	balance, err := uc.accountRepo.GetCustomerBalance(ctx, customerNumber)
	if err != nil {
		uc.logSchemaDefect(err, "customer_balance", customerNumber)
		return 0, err
	}

	return balance, nil
}

// RecentHistory returns the n most recent history entries, newest first.
func (uc *AccountUseCase) RecentHistory(ctx context.Context, accountNumber int64, n int) ([]*domain.HistoryEntry, error) {
	if err := domain.ValidateNumbers(0, accountNumber); err != nil {
		return nil, err
	}
	if err := domain.ValidateHistoryLimit(n); err != nil {
		return nil, err
	}

	return uc.historyRepo.ListRecent(ctx, accountNumber, n)
}

func (uc *AccountUseCase) logSchemaDefect(err error, query string, key int64) {
	if errors.Is(err, domain.ErrTooManyResults) {
		uc.logger.Error().Err(err).
			Str("query", query).
			Int64("key", key).
			Msg("unique lookup returned more than one row")
	}
}
