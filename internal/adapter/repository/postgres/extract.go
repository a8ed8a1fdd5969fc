package postgres

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/bankledger/internal/domain"
)

// exactlyOne returns the single row of a :many query. Zero rows map to
// domain.ErrNoResults and more than one to domain.ErrTooManyResults.
func exactlyOne[T any](rows []T, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}

	switch len(rows) {
	case 0:
		return zero, domain.ErrNoResults
	case 1:
		return rows[0], nil
	default:
		return zero, fmt.Errorf("%w: got %d rows", domain.ErrTooManyResults, len(rows))
	}
}

// Type conversion helpers.
func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func pgTimestamptzToPtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time.UTC()
	return &t
}

// An empty memo is stored as NULL.
func memoToPgText(memo string) pgtype.Text {
	return pgtype.Text{String: memo, Valid: memo != ""}
}

func nameToPgText(name string) pgtype.Text {
	return pgtype.Text{String: name, Valid: true}
}
