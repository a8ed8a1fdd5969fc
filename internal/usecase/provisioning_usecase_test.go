package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
	"github.com/iho/bankledger/internal/usecase/mocks"
)

type counterNumbers struct{ next int64 }

func (c *counterNumbers) Next() int64 {
	c.next++
	return c.next
}

func newProvisioningFixture(t *testing.T, shards int) (*mocks.MemoryStore, *usecase.ProvisioningUseCase, *usecase.ShardSet) {
	t.Helper()

	store := mocks.NewMemoryStore(0)
	store.SetClock(func() time.Time { return testNow })
	set := usecase.NewShardSet(store, shards)
	uc := usecase.NewProvisioningUseCase(store, store, &counterNumbers{next: 100}, set,
		usecase.WithClock(func() time.Time { return testNow }))
	return store, uc, set
}

func TestProvisioningUseCase_Provision(t *testing.T) {
	store, uc, set := newProvisioningFixture(t, 8)
	ctx := context.Background()

	result, err := uc.Provision(ctx, usecase.ProvisionInput{
		Customers: []usecase.ProvisionCustomer{
			{FirstName: "Catalina", LastName: "Jones", Accounts: []domain.AccountType{domain.AccountTypeSavings, domain.AccountTypeChecking}},
			{FirstName: "Mehmet", LastName: "Aydin", Accounts: []domain.AccountType{domain.AccountTypeChecking}},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Customers, 2)
	require.Len(t, result.Accounts, 3)

	for _, a := range result.Accounts {
		acc, ok := store.Account(a.AccountNumber)
		require.True(t, ok)
		assert.Zero(t, acc.Balance)
		assert.Nil(t, acc.LastInterestCalculation)

		history := store.History(a.AccountNumber)
		require.Len(t, history, 1)
		assert.Equal(t, domain.MemoInitialDeposit, history[0].Memo)
		assert.Zero(t, history[0].ChangeAmount)
	}

	assert.Equal(t, result.Customers[0].Number, result.Accounts[0].CustomerNumber)
	assert.Equal(t, result.Customers[0].Number, result.Accounts[1].CustomerNumber)
	assert.Equal(t, result.Customers[1].Number, result.Accounts[2].CustomerNumber)

	shards, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, shards, 8)
	assertLedgerInvariants(t, store, set)
}

func TestProvisioningUseCase_ProvisionedAccountsAcceptDeposits(t *testing.T) {
	store, uc, set := newProvisioningFixture(t, 4)
	ctx := context.Background()

	result, err := uc.Provision(ctx, usecase.ProvisionInput{
		Customers: []usecase.ProvisionCustomer{
			{FirstName: "Ada", LastName: "Byron", Accounts: []domain.AccountType{domain.AccountTypeChecking}},
		},
	})
	require.NoError(t, err)

	ledger := usecase.NewLedgerUseCase(store, store, store, set)
	account := result.Accounts[0]
	_, err = ledger.Deposit(ctx, usecase.DepositInput{
		CustomerNumber: account.CustomerNumber,
		AccountNumber:  account.AccountNumber,
		Cents:          900,
	})
	require.NoError(t, err)

	assert.Len(t, store.History(account.AccountNumber), 2)
	assertLedgerInvariants(t, store, set)
}

func TestProvisioningUseCase_Reset(t *testing.T) {
	store, uc, _ := newProvisioningFixture(t, 2)
	ctx := context.Background()
	input := usecase.ProvisionInput{
		Customers: []usecase.ProvisionCustomer{
			{FirstName: "Ada", LastName: "Byron", Accounts: []domain.AccountType{domain.AccountTypeSavings}},
		},
	}

	first, err := uc.Provision(ctx, input)
	require.NoError(t, err)

	input.Reset = true
	second, err := uc.Provision(ctx, input)
	require.NoError(t, err)

	_, ok := store.Account(first.Accounts[0].AccountNumber)
	assert.False(t, ok, "reset must remove previously provisioned accounts")
	assert.Equal(t, []int64{second.Accounts[0].AccountNumber}, store.AccountNumbers())
}

func TestProvisioningUseCase_SkipsDuplicateNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	numbers := mocks.NewMockNumberGenerator(ctrl)
	gomock.InOrder(
		numbers.EXPECT().Next().Return(int64(7)),
		numbers.EXPECT().Next().Return(int64(11)),
		numbers.EXPECT().Next().Return(int64(11)),
		numbers.EXPECT().Next().Return(int64(12)),
	)

	store := mocks.NewMemoryStore(0)
	uc := usecase.NewProvisioningUseCase(store, store, numbers, usecase.NewShardSet(store, 0))

	result, err := uc.Provision(context.Background(), usecase.ProvisionInput{
		Customers: []usecase.ProvisionCustomer{
			{FirstName: "Ada", LastName: "Byron", Accounts: []domain.AccountType{domain.AccountTypeSavings, domain.AccountTypeChecking}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Customers[0].Number)
	assert.Equal(t, int64(11), result.Accounts[0].AccountNumber)
	assert.Equal(t, int64(12), result.Accounts[1].AccountNumber)
}

func TestProvisioningUseCase_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.ProvisionInput
		wantErr error
	}{
		{
			name:    "no customers",
			input:   usecase.ProvisionInput{},
			wantErr: domain.ErrNoCustomersRequested,
		},
		{
			name: "no accounts",
			input: usecase.ProvisionInput{Customers: []usecase.ProvisionCustomer{
				{FirstName: "Ada", LastName: "Byron"},
			}},
			wantErr: domain.ErrNoAccountsRequested,
		},
		{
			name: "blank last name",
			input: usecase.ProvisionInput{Customers: []usecase.ProvisionCustomer{
				{FirstName: "Ada", LastName: "  ", Accounts: []domain.AccountType{domain.AccountTypeSavings}},
			}},
			wantErr: domain.ErrInvalidName,
		},
		{
			name: "unknown account type",
			input: usecase.ProvisionInput{Customers: []usecase.ProvisionCustomer{
				{FirstName: "Ada", LastName: "Byron", Accounts: []domain.AccountType{domain.AccountType(5)}},
			}},
			wantErr: domain.ErrInvalidAccountType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, uc, _ := newProvisioningFixture(t, 2)

			_, err := uc.Provision(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, store.Commits(), "validation failures must not open a transaction")
			assert.Empty(t, store.AccountNumbers())
		})
	}
}
