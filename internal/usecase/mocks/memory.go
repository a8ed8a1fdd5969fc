package mocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// ErrMemoryTxClosed is returned when a finished memory transaction is used.
var ErrMemoryTxClosed = errors.New("memory transaction already closed")

// MemoryStore is an in-memory ledger store. It implements every repository
// port of the use cases plus usecase.TransactionManager. Transactions run
// one at a time on a private copy of the state that replaces the shared
// state only when the callback succeeds.
type MemoryStore struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	state  *memState
	clock  func() time.Time
	lastTs time.Time

	// BeforeCommit, when set, runs after the callback succeeds. A non-nil
	// error discards the transaction.
	BeforeCommit func() error

	commits   int
	rollbacks int
}

type memState struct {
	customers map[int64]domain.Customer
	accounts  map[int64]domain.Account
	history   map[int64][]domain.HistoryEntry
	shards    map[int64]int64
}

func newMemState() *memState {
	return &memState{
		customers: make(map[int64]domain.Customer),
		accounts:  make(map[int64]domain.Account),
		history:   make(map[int64][]domain.HistoryEntry),
		shards:    make(map[int64]int64),
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.accounts {
		if v.LastInterestCalculation != nil {
			t := *v.LastInterestCalculation
			v.LastInterestCalculation = &t
		}
		c.accounts[k] = v
	}
	for k, v := range s.history {
		c.history[k] = append([]domain.HistoryEntry(nil), v...)
	}
	for k, v := range s.shards {
		c.shards[k] = v
	}
	return c
}

// NewMemoryStore creates an empty store with the given number of shard rows.
func NewMemoryStore(shards int) *MemoryStore {
	s := &MemoryStore{
		state: newMemState(),
		clock: func() time.Time { return time.Now().UTC() },
	}
	for i := 0; i < shards; i++ {
		s.state.shards[int64(i)] = 0
	}
	return s
}

// SetClock overrides the transaction timestamp source.
func (s *MemoryStore) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
	s.lastTs = time.Time{}
}

// AddAccount inserts a customer (if new) and an account outside any transaction.
func (s *MemoryStore) AddAccount(customer domain.Customer, account domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.customers[customer.Number] = customer
	account.CustomerNumber = customer.Number
	s.state.accounts[account.AccountNumber] = account
}

// Account returns a copy of an account.
func (s *MemoryStore) Account(accountNumber int64) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.state.accounts[accountNumber]
	return acc, ok
}

// AccountNumbers returns every account number in ascending order.
func (s *MemoryStore) AccountNumbers() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	numbers := make([]int64, 0, len(s.state.accounts))
	for n := range s.state.accounts {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	return numbers
}

// History returns all history entries of an account, oldest first.
func (s *MemoryStore) History(accountNumber int64) []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.HistoryEntry(nil), s.state.history[accountNumber]...)
}

// HistorySum returns the sum of ChangeAmount over an account's history.
func (s *MemoryStore) HistorySum(accountNumber int64) int64 {
	var sum int64
	for _, h := range s.History(accountNumber) {
		sum += h.ChangeAmount
	}
	return sum
}

// SetShardBalance overwrites a shard row, bypassing the ledger.
func (s *MemoryStore) SetShardBalance(shard, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.shards[shard] = balance
}

// Commits returns the number of committed transactions.
func (s *MemoryStore) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commits
}

// Rollbacks returns the number of discarded transactions.
func (s *MemoryStore) Rollbacks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rollbacks
}

// memTx is the usecase.Transaction handed to callbacks.
type memTx struct {
	state  *memState
	now    time.Time
	closed bool
}

func (t *memTx) Commit(ctx context.Context) error   { return nil }
func (t *memTx) Rollback(ctx context.Context) error { return nil }

func (s *MemoryStore) txState(tx usecase.Transaction) (*memTx, error) {
	mt, ok := tx.(*memTx)
	if !ok {
		return nil, fmt.Errorf("unexpected transaction type %T", tx)
	}
	if mt.closed {
		return nil, ErrMemoryTxClosed
	}
	return mt, nil
}

// RunInTx implements usecase.TransactionManager.
func (s *MemoryStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx usecase.Transaction) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	now := s.clock()
	if !now.After(s.lastTs) {
		now = s.lastTs.Add(time.Microsecond)
	}
	s.lastTs = now
	tx := &memTx{state: s.state.clone(), now: now}
	s.mu.Unlock()

	err := fn(ctx, tx)
	if err == nil && s.BeforeCommit != nil {
		err = s.BeforeCommit()
	}
	tx.closed = true

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.rollbacks++
		return err
	}
	s.state = tx.state
	s.commits++
	return nil
}

// GetForChange implements usecase.AccountRepository.
func (s *MemoryStore) GetForChange(ctx context.Context, tx usecase.Transaction, customerNumber, accountNumber int64) (int64, time.Time, error) {
	mt, err := s.txState(tx)
	if err != nil {
		return 0, time.Time{}, err
	}
	acc, ok := mt.state.accounts[accountNumber]
	if !ok || acc.CustomerNumber != customerNumber {
		return 0, time.Time{}, fmt.Errorf("%w: %w", domain.ErrAccountNotFound, domain.ErrNoResults)
	}
	return acc.Balance, mt.now, nil
}

// GetForInterest implements usecase.AccountRepository.
func (s *MemoryStore) GetForInterest(ctx context.Context, tx usecase.Transaction, customerNumber, accountNumber int64) (*domain.Account, time.Time, error) {
	mt, err := s.txState(tx)
	if err != nil {
		return nil, time.Time{}, err
	}
	acc, ok := mt.state.accounts[accountNumber]
	if !ok || acc.CustomerNumber != customerNumber {
		return nil, time.Time{}, fmt.Errorf("%w: %w", domain.ErrAccountNotFound, domain.ErrNoResults)
	}
	return &acc, mt.now, nil
}

// UpdateBalance implements usecase.AccountRepository.
func (s *MemoryStore) UpdateBalance(ctx context.Context, tx usecase.Transaction, customerNumber, accountNumber, balance int64) error {
	mt, err := s.txState(tx)
	if err != nil {
		return err
	}
	acc, ok := mt.state.accounts[accountNumber]
	if !ok || acc.CustomerNumber != customerNumber {
		return fmt.Errorf("%w: %w", domain.ErrAccountNotFound, domain.ErrNoResults)
	}
	if balance < 0 {
		return fmt.Errorf("balance check constraint violated: %d", balance)
	}
	acc.Balance = balance
	mt.state.accounts[accountNumber] = acc
	return nil
}

// SetLastInterestCalculation implements usecase.AccountRepository.
func (s *MemoryStore) SetLastInterestCalculation(ctx context.Context, tx usecase.Transaction, customerNumber, accountNumber int64, at time.Time) error {
	mt, err := s.txState(tx)
	if err != nil {
		return err
	}
	acc, ok := mt.state.accounts[accountNumber]
	if !ok || acc.CustomerNumber != customerNumber {
		return fmt.Errorf("%w: %w", domain.ErrAccountNotFound, domain.ErrNoResults)
	}
	at = at.UTC()
	acc.LastInterestCalculation = &at
	mt.state.accounts[accountNumber] = acc
	return nil
}

// GetBalance implements usecase.AccountRepository.
func (s *MemoryStore) GetBalance(ctx context.Context, accountNumber int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.state.accounts[accountNumber]
	if !ok {
		return 0, domain.ErrNoResults
	}
	return acc.Balance, nil
}

// GetCustomerBalance implements usecase.AccountRepository.
func (s *MemoryStore) GetCustomerBalance(ctx context.Context, customerNumber int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.state.customers[customerNumber]; !ok {
		return 0, domain.ErrNoResults
	}
	var (
		sum   int64
		found bool
	)
	for _, acc := range s.state.accounts {
		if acc.CustomerNumber == customerNumber {
			sum += acc.Balance
			found = true
		}
	}
	if !found {
		return 0, domain.ErrNoResults
	}
	return sum, nil
}

// ListInterestCandidates implements usecase.AccountRepository.
func (s *MemoryStore) ListInterestCandidates(ctx context.Context, policy domain.EligibilityPolicy, after int64, limit int) ([]domain.InterestCandidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.clock()

	candidates := make([]domain.InterestCandidate, 0)
	for _, acc := range s.state.accounts {
		if acc.AccountNumber <= after || !policy.IsEligible(acc.LastInterestCalculation, now) {
			continue
		}
		candidates = append(candidates, domain.InterestCandidate{
			CustomerNumber:          acc.CustomerNumber,
			AccountNumber:           acc.AccountNumber,
			LastInterestCalculation: acc.LastInterestCalculation,
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].AccountNumber < candidates[j].AccountNumber
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// SumBalances implements usecase.AccountRepository.
func (s *MemoryStore) SumBalances(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum int64
	for _, acc := range s.state.accounts {
		sum += acc.Balance
	}
	return sum, nil
}

// Append implements usecase.HistoryRepository.
func (s *MemoryStore) Append(ctx context.Context, tx usecase.Transaction, entry *domain.HistoryEntry) error {
	mt, err := s.txState(tx)
	if err != nil {
		return err
	}
	if _, ok := mt.state.accounts[entry.AccountNumber]; !ok {
		return fmt.Errorf("history references unknown account %d", entry.AccountNumber)
	}
	for _, h := range mt.state.history[entry.AccountNumber] {
		if h.Ts.Equal(entry.Ts) {
			return fmt.Errorf("duplicate history key (%d, %s)", entry.AccountNumber, entry.Ts)
		}
	}
	mt.state.history[entry.AccountNumber] = append(mt.state.history[entry.AccountNumber], *entry)
	return nil
}

// ListRecent implements usecase.HistoryRepository.
func (s *MemoryStore) ListRecent(ctx context.Context, accountNumber int64, n int) ([]*domain.HistoryEntry, error) {
	entries := s.History(accountNumber)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Ts.After(entries[j].Ts) })
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]*domain.HistoryEntry, 0, len(entries))
	for i := range entries {
		out = append(out, &entries[i])
	}
	return out, nil
}

// Add implements usecase.ShardRepository.
func (s *MemoryStore) Add(ctx context.Context, tx usecase.Transaction, shard, cents int64) error {
	mt, err := s.txState(tx)
	if err != nil {
		return err
	}
	balance, ok := mt.state.shards[shard]
	if !ok {
		return fmt.Errorf("aggregate shard %d: %w", shard, domain.ErrShardMissing)
	}
	mt.state.shards[shard] = balance + cents
	return nil
}

// Sum implements usecase.ShardRepository.
func (s *MemoryStore) Sum(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum int64
	for _, b := range s.state.shards {
		sum += b
	}
	return sum, nil
}

// List implements usecase.ShardRepository.
func (s *MemoryStore) List(ctx context.Context) ([]domain.AggregateShard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shards := make([]domain.AggregateShard, 0, len(s.state.shards))
	for k, v := range s.state.shards {
		shards = append(shards, domain.AggregateShard{Shard: k, Balance: v})
	}
	sort.Slice(shards, func(i, j int) bool { return shards[i].Shard < shards[j].Shard })
	return shards, nil
}

// Reset implements usecase.ProvisioningRepository.
func (s *MemoryStore) Reset(ctx context.Context, tx usecase.Transaction) error {
	mt, err := s.txState(tx)
	if err != nil {
		return err
	}
	*mt.state = *newMemState()
	return nil
}

// Seed implements usecase.ProvisioningRepository.
func (s *MemoryStore) Seed(ctx context.Context, tx usecase.Transaction, batch *usecase.ProvisionBatch) error {
	mt, err := s.txState(tx)
	if err != nil {
		return err
	}
	for _, c := range batch.Customers {
		if _, dup := mt.state.customers[c.Number]; dup {
			return fmt.Errorf("duplicate customer %d", c.Number)
		}
		mt.state.customers[c.Number] = c
	}
	for _, a := range batch.Accounts {
		if _, dup := mt.state.accounts[a.AccountNumber]; dup {
			return fmt.Errorf("duplicate account %d", a.AccountNumber)
		}
		if _, ok := mt.state.customers[a.CustomerNumber]; !ok {
			return fmt.Errorf("account %d references unknown customer %d", a.AccountNumber, a.CustomerNumber)
		}
		mt.state.accounts[a.AccountNumber] = a
	}
	for _, h := range batch.History {
		mt.state.history[h.AccountNumber] = append(mt.state.history[h.AccountNumber], h)
	}
	for i := 0; i < batch.Shards; i++ {
		if _, ok := mt.state.shards[int64(i)]; !ok {
			mt.state.shards[int64(i)] = 0
		}
	}
	return nil
}

var (
	_ usecase.AccountRepository      = (*MemoryStore)(nil)
	_ usecase.HistoryRepository      = (*MemoryStore)(nil)
	_ usecase.ShardRepository        = (*MemoryStore)(nil)
	_ usecase.ProvisioningRepository = (*MemoryStore)(nil)
	_ usecase.TransactionManager     = (*MemoryStore)(nil)
)
