package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidEligibilityPolicy is returned for an unknown policy name.
var ErrInvalidEligibilityPolicy = errors.New("invalid interest eligibility policy")

// DefaultInterestRate is the monthly simple interest rate (1%).
var DefaultInterestRate = decimal.RequireFromString("0.01")

// EligibilityPolicy decides when an account is due for monthly interest.
type EligibilityPolicy string

const (
	// EligibilityCalendarMonth selects accounts last credited in any other
	// calendar month (month or year differs).
	EligibilityCalendarMonth EligibilityPolicy = "calendar_month"
	// EligibilityLegacyMonthAndYear selects accounts only when both the month
	// and the year differ. Accounts credited earlier in the same year are not
	// selected.
	EligibilityLegacyMonthAndYear EligibilityPolicy = "legacy_month_and_year"
)

// ParseEligibilityPolicy validates a policy name. An empty name selects
// EligibilityCalendarMonth.
func ParseEligibilityPolicy(s string) (EligibilityPolicy, error) {
	switch EligibilityPolicy(s) {
	case "", EligibilityCalendarMonth:
		return EligibilityCalendarMonth, nil
	case EligibilityLegacyMonthAndYear:
		return EligibilityLegacyMonthAndYear, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEligibilityPolicy, s)
	}
}

// Legacy reports whether the policy is the month-and-year conjunction.
func (p EligibilityPolicy) Legacy() bool {
	return p == EligibilityLegacyMonthAndYear
}

// IsEligible reports whether an account last credited at last is due for
// interest at now. Both times are compared in UTC.
func (p EligibilityPolicy) IsEligible(last *time.Time, now time.Time) bool {
	if last == nil {
		return true
	}

	l, n := last.UTC(), now.UTC()
	monthDiffers := l.Month() != n.Month()
	yearDiffers := l.Year() != n.Year()

	if p.Legacy() {
		return monthDiffers && yearDiffers
	}
	return monthDiffers || yearDiffers
}

// ComputeInterest returns floor(rate * balance) in cents.
func ComputeInterest(balance int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(balance).Mul(rate).Floor().IntPart()
}

// SameCalculation reports whether two LastInterestCalculation values match.
func SameCalculation(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// InterestOutcome is the result of applying interest to a single account.
type InterestOutcome int

const (
	// InterestApplied means the credit committed.
	InterestApplied InterestOutcome = iota
	// InterestAlreadyApplied means another run credited the account first.
	InterestAlreadyApplied
	// InterestNotFound means the account disappeared after selection.
	InterestNotFound
)

// String returns the outcome name used in logs and metrics.
func (o InterestOutcome) String() string {
	switch o {
	case InterestApplied:
		return "applied"
	case InterestAlreadyApplied:
		return "already_applied"
	case InterestNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// InterestCandidate is an account picked by the selection query together
// with the LastInterestCalculation observed at selection time.
type InterestCandidate struct {
	CustomerNumber          int64
	AccountNumber           int64
	LastInterestCalculation *time.Time
}

// InterestRun summarizes one execution of the accrual job.
type InterestRun struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	Applied        int
	AlreadyApplied int
	NotFound       int
	CreditedCents  int64
}

// Record adds one account outcome to the run totals.
func (r *InterestRun) Record(outcome InterestOutcome, cents int64) {
	switch outcome {
	case InterestApplied:
		r.Applied++
		r.CreditedCents += cents
	case InterestAlreadyApplied:
		r.AlreadyApplied++
	case InterestNotFound:
		r.NotFound++
	}
}

// Visited returns the number of accounts the run looked at.
func (r *InterestRun) Visited() int {
	return r.Applied + r.AlreadyApplied + r.NotFound
}
