package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation errors
var (
	ErrInvalidName          = errors.New("invalid customer name")
	ErrInvalidMemo          = errors.New("invalid memo")
	ErrInvalidNumber        = errors.New("customer and account numbers must be non-negative")
	ErrAmountTooLarge       = errors.New("amount exceeds maximum allowed")
	ErrNoAccountsRequested  = errors.New("customer must have at least one account")
	ErrNoCustomersRequested = errors.New("at least one customer is required")
)

// Validation constants
const (
	MaxNameLength = 255
	MaxMemoLength = 1024
	// MaxChangeCents bounds a single balance change (10 billion dollars).
	MaxChangeCents int64 = 1_000_000_000_000
)

// ValidateName validates a customer first or last name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateMemo validates an optional history memo.
func ValidateMemo(memo string) error {
	if utf8.RuneCountInString(memo) > MaxMemoLength {
		return fmt.Errorf("%w: memo exceeds %d characters", ErrInvalidMemo, MaxMemoLength)
	}

	return nil
}

// ValidateChange validates a signed balance change in cents. Zero is allowed.
func ValidateChange(cents int64) error {
	if cents > MaxChangeCents || cents < -MaxChangeCents {
		return fmt.Errorf("%w: |%d| > %d cents", ErrAmountTooLarge, cents, MaxChangeCents)
	}

	return nil
}

// ValidateNumbers validates customer and account numbers.
func ValidateNumbers(customerNumber, accountNumber int64) error {
	if customerNumber < 0 || accountNumber < 0 {
		return ErrInvalidNumber
	}

	return nil
}

// ValidateHistoryLimit validates the number of history rows requested.
func ValidateHistoryLimit(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, n)
	}

	return nil
}
