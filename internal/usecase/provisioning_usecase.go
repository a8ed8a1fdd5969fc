package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/bankledger/internal/domain"
)

// ProvisioningUseCase bulk-creates customers and accounts.
type ProvisioningUseCase struct {
	txManager TransactionManager
	repo      ProvisioningRepository
	numbers   NumberGenerator
	shards    *ShardSet
	logger    zerolog.Logger
	now       func() time.Time
}

// NewProvisioningUseCase creates a new ProvisioningUseCase.
func NewProvisioningUseCase(
	txManager TransactionManager,
	repo ProvisioningRepository,
	numbers NumberGenerator,
	shards *ShardSet,
	opts ...Option,
) *ProvisioningUseCase {
	o := newOptions(opts)
	return &ProvisioningUseCase{
		txManager: txManager,
		repo:      repo,
		numbers:   numbers,
		shards:    shards,
		logger:    o.logger,
		now:       o.now,
	}
}

// ProvisionCustomer describes one customer to create.
type ProvisionCustomer struct {
	FirstName string
	LastName  string
	Accounts  []domain.AccountType
}

// ProvisionInput is a provisioning request. Reset empties every table first.
type ProvisionInput struct {
	Reset     bool
	Customers []ProvisionCustomer
}

// ProvisionResult lists what was created.
type ProvisionResult struct {
	Customers []domain.Customer
	Accounts  []domain.Account
}

// Provision creates the requested customers with zero-balance accounts,
// one zero "New Account Initial Deposit" history row per account and the
// aggregate shard rows, all in one transaction.
func (uc *ProvisioningUseCase) Provision(ctx context.Context, input ProvisionInput) (*ProvisionResult, error) {
	batch, err := uc.buildBatch(input)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTx(ctx, func(ctx context.Context, tx Transaction) error {
		if input.Reset {
			if err := uc.repo.Reset(ctx, tx); err != nil {
				return err
			}
		}
		return uc.repo.Seed(ctx, tx, batch)
	})
	if err != nil {
		return nil, fmt.Errorf("provision ledger: %w", err)
	}

	uc.logger.Info().
		Bool("reset", input.Reset).
		Int("customers", len(batch.Customers)).
		Int("accounts", len(batch.Accounts)).
		Int("shards", batch.Shards).
		Msg("ledger provisioned")

	return &ProvisionResult{Customers: batch.Customers, Accounts: batch.Accounts}, nil
}

func (uc *ProvisioningUseCase) buildBatch(input ProvisionInput) (*ProvisionBatch, error) {
	if len(input.Customers) == 0 {
		return nil, domain.ErrNoCustomersRequested
	}

	now := uc.now()
	batch := &ProvisionBatch{Shards: uc.shards.Count()}
	usedCustomers := make(map[int64]struct{})
	usedAccounts := make(map[int64]struct{})

	for _, pc := range input.Customers {
		if err := domain.ValidateName(pc.FirstName); err != nil {
			return nil, err
		}
		if err := domain.ValidateName(pc.LastName); err != nil {
			return nil, err
		}
		if len(pc.Accounts) == 0 {
			return nil, domain.ErrNoAccountsRequested
		}

		customer := domain.Customer{
			Number:    uc.uniqueNumber(usedCustomers),
			FirstName: pc.FirstName,
			LastName:  pc.LastName,
		}
		batch.Customers = append(batch.Customers, customer)

		for _, typ := range pc.Accounts {
			if typ != domain.AccountTypeSavings && typ != domain.AccountTypeChecking {
				return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAccountType, int64(typ))
			}

			account := domain.Account{
				CustomerNumber: customer.Number,
				AccountNumber:  uc.uniqueNumber(usedAccounts),
				Type:           typ,
				CreationTime:   now,
			}
			batch.Accounts = append(batch.Accounts, account)
			batch.History = append(batch.History, domain.HistoryEntry{
				AccountNumber: account.AccountNumber,
				Ts:            now,
				ChangeAmount:  0,
				Memo:          domain.MemoInitialDeposit,
			})
		}
	}

	return batch, nil
}

func (uc *ProvisioningUseCase) uniqueNumber(used map[int64]struct{}) int64 {
	for {
		n := uc.numbers.Next()
		if _, taken := used[n]; !taken {
			used[n] = struct{}{}
			return n
		}
	}
}
