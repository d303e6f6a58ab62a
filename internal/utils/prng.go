// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps the standard random generator so the whole game can run
// on a predictable seed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new instance with the given seed. A zero seed
// falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
