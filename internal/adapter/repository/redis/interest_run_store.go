package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

const lastInterestRunKey = "interest:last_run"

// InterestRunStore implements usecase.InterestRunStore on top of a Cache.
type InterestRunStore struct {
	cache usecase.Cache
	ttl   time.Duration
}

// NewInterestRunStore creates a new InterestRunStore. The report is kept
// for ttl; zero keeps it until the next run overwrites it.
func NewInterestRunStore(cache usecase.Cache, ttl time.Duration) *InterestRunStore {
	return &InterestRunStore{cache: cache, ttl: ttl}
}

type interestRunRecord struct {
	ID             string    `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	Applied        int       `json:"applied"`
	AlreadyApplied int       `json:"already_applied"`
	NotFound       int       `json:"not_found"`
	CreditedCents  int64     `json:"credited_cents"`
}

// SaveLast stores run as the most recent interest run.
func (s *InterestRunStore) SaveLast(ctx context.Context, run *domain.InterestRun) error {
	payload, err := json.Marshal(interestRunRecord{
		ID:             run.ID,
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
		Applied:        run.Applied,
		AlreadyApplied: run.AlreadyApplied,
		NotFound:       run.NotFound,
		CreditedCents:  run.CreditedCents,
	})
	if err != nil {
		return fmt.Errorf("failed to encode interest run: %w", err)
	}

	return s.cache.Set(ctx, lastInterestRunKey, payload, s.ttl)
}

// GetLast returns the most recent interest run or domain.ErrNoResults.
func (s *InterestRunStore) GetLast(ctx context.Context) (*domain.InterestRun, error) {
	payload, err := s.cache.Get(ctx, lastInterestRunKey)
	if err != nil {
		return nil, err
	}

	var rec interestRunRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode interest run: %w", err)
	}

	return &domain.InterestRun{
		ID:             rec.ID,
		StartedAt:      rec.StartedAt,
		FinishedAt:     rec.FinishedAt,
		Applied:        rec.Applied,
		AlreadyApplied: rec.AlreadyApplied,
		NotFound:       rec.NotFound,
		CreditedCents:  rec.CreditedCents,
	}, nil
}
