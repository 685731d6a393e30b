package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elemcraft/elemcraft/internal/domain/entities"
)

func TestEmbeddedSeed(t *testing.T) {
	bundle, err := NewProvider().Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Water", "Fire", "Earth", "Air"}, bundle.BaseElements)
	assert.Len(t, bundle.Elements, 26)
	assert.Len(t, bundle.Recipes, 23)

	water, ok := bundle.Record("Water")
	require.True(t, ok)
	assert.Equal(t, "💧", water.Glyph)
	assert.True(t, water.HasTag(entities.TagBase))
}

func TestEmbeddedSeed_WorldIsConsistent(t *testing.T) {
	bundle := NewProvider().Seed()

	world, missing := bundle.NewWorld(false)
	assert.Empty(t, missing)
	assert.Equal(t, 4, world.Discovered.Len())
	assert.NoError(t, world.Validate(bundle.BaseElements))

	result, ok := world.Recipes.Lookup("Water", "Fire")
	require.True(t, ok)
	assert.Equal(t, "Steam", result)

	result, ok = world.Recipes.Lookup("Fire", "Stone")
	require.True(t, ok)
	assert.Equal(t, "Metal", result)
	assert.Contains(t, world.Recipes.Keys(), "Fire+Stone")

	revealed, _ := bundle.NewWorld(true)
	assert.True(t, revealed.Discovered.Has("Big Bang"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "base: [Water"},
		{"no base", "elements: []"},
		{"conflict", `
base: [Water]
recipes:
  - {inputs: [Water, Fire], result: Steam}
  - {inputs: [Fire, Water], result: Fog}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
