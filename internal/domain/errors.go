package domain

import "errors"

var (
	// Account errors
	ErrNegativeBalance    = errors.New("balance would become negative")
	ErrAccountNotFound    = errors.New("account not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidAccountType = errors.New("invalid account type")

	// Query errors
	ErrNoResults      = errors.New("query returned no results")
	ErrTooManyResults = errors.New("query returned more than one result")
	ErrInvalidLimit   = errors.New("limit must be positive")

	// Ledger-wide errors
	ErrInconsistentBalances = errors.New("aggregate shard balance does not match account balances")
	ErrShardsDisabled       = errors.New("aggregate balance shards are disabled")
	ErrShardMissing         = errors.New("aggregate balance shard row missing")
)
