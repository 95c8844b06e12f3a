package mergedrop

import "math/rand"

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it; tests
// pass fixed sequences.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded pseudo-random Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
