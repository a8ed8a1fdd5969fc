package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
	"github.com/iho/bankledger/internal/usecase/mocks"
)

type sequenceIDs struct{ n int }

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("run-%d", s.n)
}

func newInterestFixture(t *testing.T, cfg usecase.InterestConfig, runStore usecase.InterestRunStore) (*mocks.MemoryStore, *usecase.InterestUseCase, *usecase.ShardSet) {
	t.Helper()

	store, ledger, set := newLedgerFixture(t, 4, 0)
	uc := usecase.NewInterestUseCase(store, store, ledger, runStore, &sequenceIDs{}, cfg,
		usecase.WithClock(func() time.Time { return testNow }))
	return store, uc, set
}

func TestInterestUseCase_CreditsOncePerMonth(t *testing.T) {
	store, uc, set := newInterestFixture(t, usecase.InterestConfig{}, nil)
	ledger := usecase.NewLedgerUseCase(store, store, store, set)
	ctx := context.Background()

	_, err := ledger.Deposit(ctx, usecase.DepositInput{CustomerNumber: testCustomer, AccountNumber: testAccount, Cents: 150})
	require.NoError(t, err)

	run, err := uc.RunInterestAccrual(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, run.Applied)
	assert.Equal(t, int64(1), run.CreditedCents)

	acc, _ := store.Account(testAccount)
	assert.Equal(t, int64(151), acc.Balance)
	require.NotNil(t, acc.LastInterestCalculation)

	history := store.History(testAccount)
	require.Len(t, history, 2)
	credit := history[1]
	assert.Equal(t, domain.MemoMonthlyInterest, credit.Memo)
	assert.Equal(t, int64(1), credit.ChangeAmount)
	assert.True(t, acc.LastInterestCalculation.Equal(credit.Ts), "last interest calculation must be the transaction timestamp")

	second, err := uc.RunInterestAccrual(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Visited())

	acc, _ = store.Account(testAccount)
	assert.Equal(t, int64(151), acc.Balance)
	assert.Len(t, store.History(testAccount), 2)

	assertLedgerInvariants(t, store, set)
}

func TestInterestUseCase_TruncatesCredit(t *testing.T) {
	store, uc, set := newInterestFixture(t, usecase.InterestConfig{}, nil)
	ledger := usecase.NewLedgerUseCase(store, store, store, set)
	ctx := context.Background()

	_, err := ledger.Deposit(ctx, usecase.DepositInput{CustomerNumber: testCustomer, AccountNumber: testAccount, Cents: 19999})
	require.NoError(t, err)

	_, err = uc.RunInterestAccrual(ctx)
	require.NoError(t, err)

	acc, _ := store.Account(testAccount)
	assert.Equal(t, int64(19999+199), acc.Balance)
}

func TestInterestUseCase_StaleCandidateIsAlreadyApplied(t *testing.T) {
	store, uc, _ := newInterestFixture(t, usecase.InterestConfig{}, nil)
	ctx := context.Background()

	stale := domain.InterestCandidate{CustomerNumber: testCustomer, AccountNumber: testAccount}

	outcome, cents, err := uc.ApplyInterest(ctx, stale)
	require.NoError(t, err)
	assert.Equal(t, domain.InterestApplied, outcome)
	assert.Zero(t, cents)

	commits := store.Commits()
	outcome, cents, err = uc.ApplyInterest(ctx, stale)
	require.NoError(t, err)
	assert.Equal(t, domain.InterestAlreadyApplied, outcome)
	assert.Zero(t, cents)
	assert.Len(t, store.History(testAccount), 1, "already applied must not write history")
	assert.Equal(t, commits+1, store.Commits())
}

func TestInterestUseCase_MissingAccountIsNotFound(t *testing.T) {
	_, uc, _ := newInterestFixture(t, usecase.InterestConfig{}, nil)

	outcome, _, err := uc.ApplyInterest(context.Background(), domain.InterestCandidate{
		CustomerNumber: testCustomer,
		AccountNumber:  testAccount + 1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InterestNotFound, outcome)
}

func TestInterestUseCase_VisitsEveryAccountAcrossBatches(t *testing.T) {
	store, uc, set := newInterestFixture(t, usecase.InterestConfig{BatchSize: 2, Workers: 3}, nil)
	ledger := usecase.NewLedgerUseCase(store, store, store, set)
	ctx := context.Background()

	customer := domain.Customer{Number: 77, FirstName: "Ada", LastName: "Byron"}
	for i := int64(1); i <= 7; i++ {
		store.AddAccount(customer, domain.Account{AccountNumber: 5000 + i, CreationTime: testNow})
		_, err := ledger.Deposit(ctx, usecase.DepositInput{CustomerNumber: 77, AccountNumber: 5000 + i, Cents: i * 1000})
		require.NoError(t, err)
	}

	run, err := uc.RunInterestAccrual(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, run.Applied)
	assert.Equal(t, int64(10+20+30+40+50+60+70), run.CreditedCents)

	for _, n := range store.AccountNumbers() {
		acc, _ := store.Account(n)
		require.NotNil(t, acc.LastInterestCalculation, "account %d not credited", n)
	}

	assertLedgerInvariants(t, store, set)
}

func TestInterestUseCase_MonthRolloverDuringRun(t *testing.T) {
	october := time.Date(2026, time.October, 31, 23, 59, 59, 0, time.UTC)
	november := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)

	store := mocks.NewMemoryStore(0)
	customer := domain.Customer{Number: 9, FirstName: "Grace", LastName: "Hopper"}
	for n := int64(1); n <= 3; n++ {
		store.AddAccount(customer, domain.Account{AccountNumber: n, CreationTime: october})
	}

	// The first selection and the first apply happen in October, the rest
	// after midnight.
	calls := 0
	store.SetClock(func() time.Time {
		calls++
		if calls <= 2 {
			return october
		}
		return november
	})

	uc := usecase.NewInterestUseCase(store, store, usecase.NewLedgerUseCase(store, store, store, usecase.NewShardSet(store, 0)),
		nil, &sequenceIDs{}, usecase.InterestConfig{BatchSize: 1, Workers: 1})
	ctx := context.Background()

	run, err := uc.RunInterestAccrual(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, run.Applied)

	for _, n := range store.AccountNumbers() {
		acc, _ := store.Account(n)
		require.NotNil(t, acc.LastInterestCalculation, "account %d not credited", n)
	}
	first, _ := store.Account(1)
	assert.Equal(t, time.October, first.LastInterestCalculation.Month())

	// Account 1 was credited for October only and is due again.
	next, err := uc.RunInterestAccrual(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Applied)
}

func TestInterestUseCase_EligibilityPolicies(t *testing.T) {
	lastYearSameMonth := time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		policy  domain.EligibilityPolicy
		last    time.Time
		applied int
	}{
		{name: "calendar month credits last month", policy: domain.EligibilityCalendarMonth, last: lastMonth, applied: 1},
		{name: "calendar month credits same month last year", policy: domain.EligibilityCalendarMonth, last: lastYearSameMonth, applied: 1},
		{name: "legacy skips last month", policy: domain.EligibilityLegacyMonthAndYear, last: lastMonth, applied: 0},
		{name: "legacy skips same month last year", policy: domain.EligibilityLegacyMonthAndYear, last: lastYearSameMonth, applied: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMemoryStore(2)
			store.SetClock(func() time.Time { return testNow })
			last := tt.last
			store.AddAccount(
				domain.Customer{Number: testCustomer},
				domain.Account{AccountNumber: testAccount, LastInterestCalculation: &last},
			)
			set := usecase.NewShardSet(store, 2)
			ledger := usecase.NewLedgerUseCase(store, store, store, set)
			uc := usecase.NewInterestUseCase(store, store, ledger, nil, &sequenceIDs{},
				usecase.InterestConfig{Policy: tt.policy})

			run, err := uc.RunInterestAccrual(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.applied, run.Applied)
		})
	}
}

func TestInterestUseCase_CustomRate(t *testing.T) {
	store, _, set := newInterestFixture(t, usecase.InterestConfig{}, nil)
	ledger := usecase.NewLedgerUseCase(store, store, store, set)
	ctx := context.Background()

	_, err := ledger.Deposit(ctx, usecase.DepositInput{CustomerNumber: testCustomer, AccountNumber: testAccount, Cents: 1000})
	require.NoError(t, err)

	uc := usecase.NewInterestUseCase(store, store, ledger, nil, &sequenceIDs{},
		usecase.InterestConfig{Rate: decimal.RequireFromString("0.025")})
	run, err := uc.RunInterestAccrual(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25), run.CreditedCents)
}

func TestInterestUseCase_StoresRunReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	runStore := mocks.NewMockInterestRunStore(ctrl)

	runStore.EXPECT().SaveLast(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, run *domain.InterestRun) error {
			if run.ID != "run-1" || run.Applied != 1 {
				t.Errorf("unexpected run report: %+v", run)
			}
			return nil
		})
	runStore.EXPECT().GetLast(gomock.Any()).Return(&domain.InterestRun{ID: "run-1"}, nil)

	_, uc, _ := newInterestFixture(t, usecase.InterestConfig{}, runStore)
	ctx := context.Background()

	_, err := uc.RunInterestAccrual(ctx)
	require.NoError(t, err)

	last, err := uc.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-1", last.ID)
}

func TestInterestUseCase_RunStoreFailureDoesNotFailRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	runStore := mocks.NewMockInterestRunStore(ctrl)
	runStore.EXPECT().SaveLast(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, uc, _ := newInterestFixture(t, usecase.InterestConfig{}, runStore)

	run, err := uc.RunInterestAccrual(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, run.Applied)
}

func TestInterestUseCase_LastRunWithoutStore(t *testing.T) {
	_, uc, _ := newInterestFixture(t, usecase.InterestConfig{}, nil)

	_, err := uc.LastRun(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoResults)
}

func TestInterestUseCase_SelectionErrorAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	selectErr := errors.New("connection refused")

	accountRepo.EXPECT().
		ListInterestCandidates(gomock.Any(), domain.EligibilityCalendarMonth, int64(-1), usecase.DefaultInterestBatchSize).
		Return(nil, selectErr)

	uc := usecase.NewInterestUseCase(txManager, accountRepo, nil, nil, &sequenceIDs{}, usecase.InterestConfig{})

	run, err := uc.RunInterestAccrual(context.Background())
	require.ErrorIs(t, err, selectErr)
	require.NotNil(t, run)
	assert.Zero(t, run.Visited())
}

func TestInterestUseCase_ApplyErrorAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	applyErr := errors.New("serialization retries exhausted")

	accountRepo.EXPECT().
		ListInterestCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.InterestCandidate{{CustomerNumber: 1, AccountNumber: 2}}, nil)
	txManager.EXPECT().RunInTx(gomock.Any(), gomock.Any()).Return(applyErr)

	uc := usecase.NewInterestUseCase(txManager, accountRepo, nil, nil, &sequenceIDs{}, usecase.InterestConfig{Workers: 1})

	_, err := uc.RunInterestAccrual(context.Background())
	require.ErrorIs(t, err, applyErr)
}
