package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstMatch(t *testing.T) {
	tests := []struct {
		name     string
		rules    []TagRule
		tags     sliceTags
		wantWord string
		wantOK   bool
	}{
		{"priority order wins", DefaultAdjectiveRules, sliceTags{"mineral", "hot"}, "Burning", true},
		{"broad tag last", DefaultAdjectiveRules, sliceTags{"airborne"}, "Floating", true},
		{"no match", DefaultAdjectiveRules, sliceTags{"invisible"}, "", false},
		{"suffix abstract beats energy", DefaultSuffixRules, sliceTags{"energy", "abstract"}, "Concept", true},
		{"empty tags", DefaultSuffixRules, nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, ok := FirstMatch(tt.rules, tt.tags)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantWord, word)
		})
	}
}
