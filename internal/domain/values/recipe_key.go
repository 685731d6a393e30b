package values

import (
	"fmt"
	"strings"
)

// RecipeKeySeparator joins the two halves of a serialized recipe key.
const RecipeKeySeparator = "+"

// RecipeKey identifies an unordered pair of elements.
// The pair is stored sorted, so NewRecipeKey(a, b) equals NewRecipeKey(b, a).
type RecipeKey struct {
	first  string
	second string
}

// NewRecipeKey canonicalizes both names and orders them.
func NewRecipeKey(a, b string) RecipeKey {
	a, b = Canonicalize(a), Canonicalize(b)
	if b < a {
		a, b = b, a
	}
	return RecipeKey{first: a, second: b}
}

// ParseRecipeKey reads a serialized "A+B" key. The halves may be in any
// order or casing; the result is always canonical.
func ParseRecipeKey(s string) (RecipeKey, error) {
	left, right, ok := strings.Cut(s, RecipeKeySeparator)
	if !ok {
		return RecipeKey{}, fmt.Errorf("recipe key %q: missing %q separator", s, RecipeKeySeparator)
	}
	if strings.TrimSpace(left) == "" || strings.TrimSpace(right) == "" {
		return RecipeKey{}, fmt.Errorf("recipe key %q: empty element name", s)
	}
	return NewRecipeKey(strings.TrimSpace(left), strings.TrimSpace(right)), nil
}

// First returns the lexically smaller element.
func (k RecipeKey) First() string {
	return k.first
}

// Second returns the lexically larger element.
func (k RecipeKey) Second() string {
	return k.second
}

// IsSelf reports whether both halves name the same element.
func (k RecipeKey) IsSelf() bool {
	return k.first == k.second
}

// IsEmpty returns true if this is the zero value
func (k RecipeKey) IsEmpty() bool {
	return k.first == "" && k.second == ""
}

// String returns the serialized form used as the recipe table key.
func (k RecipeKey) String() string {
	return k.first + RecipeKeySeparator + k.second
}
