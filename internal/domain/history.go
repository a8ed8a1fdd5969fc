package domain

import "time"

// Memos written by the ledger itself.
const (
	MemoMonthlyInterest = "Monthly Interest"
	MemoInitialDeposit  = "New Account Initial Deposit"
)

// HistoryEntry is one append-only balance change of an account.
type HistoryEntry struct {
	AccountNumber int64
	Ts            time.Time
	ChangeAmount  int64
	Memo          string
}

// AggregateShard is one bucket of the sharded all-accounts balance counter.
type AggregateShard struct {
	Shard   int64
	Balance int64
}
