package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Deterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for range 10 {
		x := a.Float64()
		assert.Equal(t, x, b.Float64())
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestSource_ZeroSeedUsesClock(t *testing.T) {
	assert.NotZero(t, NewSource(0).Seed())
}
