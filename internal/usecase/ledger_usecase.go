package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/bankledger/internal/domain"
)

// LedgerUseCase is the only writer of account balances, history and shards.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	historyRepo HistoryRepository
	shards      *ShardSet
	logger      zerolog.Logger
	metrics     LedgerMetrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	historyRepo HistoryRepository,
	shards *ShardSet,
	opts ...Option,
) *LedgerUseCase {
	o := newOptions(opts)
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		historyRepo: historyRepo,
		shards:      shards,
		logger:      o.logger,
		metrics:     o.metrics,
	}
}

// DepositInput is a signed balance change. Negative Cents withdraw.
type DepositInput struct {
	CustomerNumber int64
	AccountNumber  int64
	Cents          int64
	Memo           string
}

// Deposit applies a signed change to an account and returns the history
// entry it wrote. A withdrawal that would overdraw the account fails with
// domain.ErrNegativeBalance and writes nothing.
func (uc *LedgerUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.HistoryEntry, error) {
	if err := domain.ValidateNumbers(input.CustomerNumber, input.AccountNumber); err != nil {
		return nil, err
	}
	if err := domain.ValidateChange(input.Cents); err != nil {
		return nil, err
	}
	if err := domain.ValidateMemo(input.Memo); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	var entry *domain.HistoryEntry
	err := uc.txManager.RunInTx(ctx, func(ctx context.Context, tx Transaction) error {
		balance, txTime, err := uc.accountRepo.GetForChange(ctx, tx, input.CustomerNumber, input.AccountNumber)
		if err != nil {
			return err
		}

		newBalance, err := domain.ApplyChange(balance, input.Cents)
		if err != nil {
			return err
		}

		entry, err = uc.applyChange(ctx, tx, balanceChange{
			customerNumber: input.CustomerNumber,
			accountNumber:  input.AccountNumber,
			cents:          input.Cents,
			newBalance:     newBalance,
			memo:           input.Memo,
			ts:             txTime,
		})
		return err
	})
	if err != nil {
		uc.logRejected(input, err)
		return nil, err
	}

	uc.metrics.DepositApplied(input.Cents)
	uc.logger.Debug().
		Int64("account", input.AccountNumber).
		Int64("cents", input.Cents).
		Time("ts", entry.Ts).
		Msg("balance change committed")

	return entry, nil
}

type balanceChange struct {
	customerNumber int64
	accountNumber  int64
	cents          int64
	newBalance     int64
	memo           string
	ts             time.Time
}

// applyChange writes the new balance, appends the history entry and adds
// the change to one shard. The caller has already checked the balance.
func (uc *LedgerUseCase) applyChange(ctx context.Context, tx Transaction, c balanceChange) (*domain.HistoryEntry, error) {
	if err := uc.accountRepo.UpdateBalance(ctx, tx, c.customerNumber, c.accountNumber, c.newBalance); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	entry := &domain.HistoryEntry{
		AccountNumber: c.accountNumber,
		Ts:            c.ts,
		ChangeAmount:  c.cents,
		Memo:          c.memo,
	}
	if err := uc.historyRepo.Append(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	if err := uc.shards.Record(ctx, tx, c.cents); err != nil {
		return nil, fmt.Errorf("record aggregate shard: %w", err)
	}

	return entry, nil
}

func (uc *LedgerUseCase) logRejected(input DepositInput, err error) {
	switch {
	case errors.Is(err, domain.ErrNegativeBalance):
		uc.metrics.DepositRejected("negative_balance")
		uc.logger.Warn().
			Int64("customer", input.CustomerNumber).
			Int64("account", input.AccountNumber).
			Int64("cents", input.Cents).
			Msg("withdrawal rejected: balance would become negative")
	case errors.Is(err, domain.ErrAccountNotFound):
		uc.metrics.DepositRejected("account_not_found")
	case errors.Is(err, domain.ErrTooManyResults):
		uc.metrics.DepositRejected("too_many_results")
		uc.logger.Error().Err(err).
			Int64("customer", input.CustomerNumber).
			Int64("account", input.AccountNumber).
			Msg("account lookup returned more than one row")
	default:
		uc.metrics.DepositRejected("error")
		uc.logger.Error().Err(err).
			Int64("account", input.AccountNumber).
			Msg("balance change failed")
	}
}
