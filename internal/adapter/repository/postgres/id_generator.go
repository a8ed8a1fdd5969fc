package postgres

import (
	"math"
	"math/rand/v2"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID-based IDs.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

// RandomNumberGenerator draws customer and account numbers uniformly from
// [0, 2^63-1).
type RandomNumberGenerator struct{}

// NewRandomNumberGenerator creates a new RandomNumberGenerator.
func NewRandomNumberGenerator() *RandomNumberGenerator {
	return &RandomNumberGenerator{}
}

// Next returns a random non-negative number.
func (g *RandomNumberGenerator) Next() int64 {
	return rand.Int64N(math.MaxInt64)
}
