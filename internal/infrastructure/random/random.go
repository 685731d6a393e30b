// Package random provides the random source and clock used by name
// generation.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a concurrency-safe, seedable source of uniform floats.
type Source struct {
	rng  *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewSource creates a seeded source. A zero seed uses the current time.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)), //nolint:gosec // G404: gameplay randomness
		seed: seed,
	}
}

// Seed returns the effective seed, for reproducing a session.
func (s *Source) Seed() int64 {
	return s.seed
}

// Float64 returns a sample in [0, 1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
