package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds a single RunInTx call, retries included.
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// DefaultInterestBatchSize is the selection limit of the interest job.
	DefaultInterestBatchSize = 100

	// DefaultInterestWorkers is the number of concurrent interest applies.
	DefaultInterestWorkers = 4
)
