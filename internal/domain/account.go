package domain

import (
	"fmt"
	"time"
)

// AccountType distinguishes savings from checking accounts.
type AccountType int64

const (
	AccountTypeSavings  AccountType = 0
	AccountTypeChecking AccountType = 1
)

// String returns the lowercase name of the account type.
func (t AccountType) String() string {
	switch t {
	case AccountTypeSavings:
		return "savings"
	case AccountTypeChecking:
		return "checking"
	default:
		return fmt.Sprintf("unknown(%d)", int64(t))
	}
}

// ParseAccountType parses "savings" or "checking".
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "savings":
		return AccountTypeSavings, nil
	case "checking":
		return AccountTypeChecking, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccountType, s)
	}
}

// Customer owns one or more accounts.
type Customer struct {
	Number    int64
	FirstName string
	LastName  string
}

// Account is a customer's account. Balance is held in cents and mirrors the
// sum of the account's history entries.
type Account struct {
	CustomerNumber          int64
	AccountNumber           int64
	Type                    AccountType
	Balance                 int64
	CreationTime            time.Time
	LastInterestCalculation *time.Time
}

// ApplyChange returns the balance after adding cents.
// A debit that would leave the balance below zero is rejected.
func (a *Account) ApplyChange(cents int64) (int64, error) {
	return ApplyChange(a.Balance, cents)
}

// ApplyChange computes balance+cents, rejecting debits that go negative.
func ApplyChange(balance, cents int64) (int64, error) {
	newBalance := balance + cents
	if cents < 0 && newBalance < 0 {
		return balance, ErrNegativeBalance
	}
	return newBalance, nil
}
