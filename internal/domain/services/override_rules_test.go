package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOverride_FirstMatchWins(t *testing.T) {
	rules, err := CompileOverrides(DefaultOverrideSpecs)
	require.NoError(t, err)

	tests := []struct {
		name  string
		tags  []string
		want  string
		match bool
	}{
		{"golem before animal", []string{"life", "stone", "earthy"}, "Golem", true},
		{"fish before animal", []string{"life", "watery", "earthy"}, "Fish", true},
		{"magma needs no water", []string{"hot", "stone"}, "Magma Rock", true},
		{"wet stone is not magma", []string{"hot", "stone", "watery"}, "", false},
		{"cloud before ice", []string{"cold", "watery", "airborne"}, "Cloud", true},
		{"ice", []string{"cold", "watery"}, "Ice", true},
		{"knight", []string{"human", "metal"}, "Knight", true},
		{"nothing", []string{"hot", "energy"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchOverride(rules, tt.tags)
			assert.Equal(t, tt.match, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileOverrides_Validation(t *testing.T) {
	_, err := CompileOverrides([]OverrideSpec{{When: `"a" in tags`}})
	assert.Error(t, err, "name is required")

	_, err = CompileOverrides([]OverrideSpec{{When: `len(tags)`, Name: "Count"}})
	assert.Error(t, err, "expression must be boolean")
}

func TestFirstMatch_Priority(t *testing.T) {
	adj, ok := FirstMatch(DefaultAdjectiveRules, sliceTags{"airborne", "cold", "hot"})
	assert.True(t, ok)
	assert.Equal(t, "Burning", adj)

	suffix, ok := FirstMatch(DefaultSuffixRules, sliceTags{"energy", "life", "abstract"})
	assert.True(t, ok)
	assert.Equal(t, "Concept", suffix)

	suffix, _ = FirstMatch(DefaultSuffixRules, sliceTags{"energy", "life"})
	assert.Equal(t, "Spirit", suffix)

	_, ok = FirstMatch(DefaultAdjectiveRules, sliceTags{"nothing"})
	assert.False(t, ok)
}
