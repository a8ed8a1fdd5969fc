package usecase

import (
	"context"
	"time"

	"github.com/iho/bankledger/internal/domain"
)

// AccountRepository defines data access for accounts.
//
// Methods taking a Transaction run inside it; the others read from the pool.
type AccountRepository interface {
	// GetForChange returns the balance of the account together with the
	// transaction's own timestamp. ErrAccountNotFound if no row matches.
	GetForChange(ctx context.Context, tx Transaction, customerNumber, accountNumber int64) (int64, time.Time, error)
	// GetForInterest re-reads the account inside tx. ErrAccountNotFound if no row matches.
	GetForInterest(ctx context.Context, tx Transaction, customerNumber, accountNumber int64) (*domain.Account, time.Time, error)
	UpdateBalance(ctx context.Context, tx Transaction, customerNumber, accountNumber, balance int64) error
	SetLastInterestCalculation(ctx context.Context, tx Transaction, customerNumber, accountNumber int64, at time.Time) error

	GetBalance(ctx context.Context, accountNumber int64) (int64, error)
	GetCustomerBalance(ctx context.Context, customerNumber int64) (int64, error)
	// ListInterestCandidates pages through eligible accounts ordered by
	// account number, starting after the given number.
	ListInterestCandidates(ctx context.Context, policy domain.EligibilityPolicy, after int64, limit int) ([]domain.InterestCandidate, error)
	SumBalances(ctx context.Context) (int64, error)
}

// HistoryRepository defines data access for account history.
type HistoryRepository interface {
	Append(ctx context.Context, tx Transaction, entry *domain.HistoryEntry) error
	// ListRecent returns up to n entries, newest first.
	ListRecent(ctx context.Context, accountNumber int64, n int) ([]*domain.HistoryEntry, error)
}

// ShardRepository defines data access for the aggregate balance shards.
type ShardRepository interface {
	Add(ctx context.Context, tx Transaction, shard, cents int64) error
	Sum(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]domain.AggregateShard, error)
}

// ProvisionBatch is the full set of rows written by one provisioning run.
type ProvisionBatch struct {
	Customers []domain.Customer
	Accounts  []domain.Account
	History   []domain.HistoryEntry
	Shards    int
}

// ProvisioningRepository bulk-loads and clears the ledger tables.
type ProvisioningRepository interface {
	Reset(ctx context.Context, tx Transaction) error
	Seed(ctx context.Context, tx Transaction, batch *ProvisionBatch) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager runs fn inside a serializable transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
// Serialization conflicts re-run fn from the start, so fn must not keep
// state across attempts.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Transaction) error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// NumberGenerator generates customer and account numbers.
type NumberGenerator interface {
	Next() int64
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// InterestRunStore keeps the report of the most recent interest run.
type InterestRunStore interface {
	SaveLast(ctx context.Context, run *domain.InterestRun) error
	// GetLast returns ErrNoResults when no run has been recorded.
	GetLast(ctx context.Context) (*domain.InterestRun, error)
}

// LedgerMetrics receives ledger events for instrumentation.
type LedgerMetrics interface {
	DepositApplied(cents int64)
	DepositRejected(reason string)
	InterestOutcome(outcome domain.InterestOutcome, cents int64)
	InterestRunCompleted(run *domain.InterestRun)
	ConsistencyChecked(report *ConsistencyReport)
}

type nopMetrics struct{}

func (nopMetrics) DepositApplied(int64)                          {}
func (nopMetrics) DepositRejected(string)                        {}
func (nopMetrics) InterestOutcome(domain.InterestOutcome, int64) {}
func (nopMetrics) InterestRunCompleted(*domain.InterestRun)      {}
func (nopMetrics) ConsistencyChecked(*ConsistencyReport)         {}
