package entities

import (
	"maps"
	"slices"

	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// RecipeTable maps an unordered element pair to a result element.
//
// Invariants:
// - Keys are canonical RecipeKeys, so A+B and B+A hit the same entry
// - A key, once bound, is never rebound to a different result
type RecipeTable struct {
	results map[string]string
}

// NewRecipeTable creates an empty table.
func NewRecipeTable() *RecipeTable {
	return &RecipeTable{results: make(map[string]string)}
}

// Lookup returns the result bound to the pair, if any.
func (t *RecipeTable) Lookup(a, b string) (string, bool) {
	return t.LookupKey(values.NewRecipeKey(a, b))
}

// LookupKey returns the result bound to key, if any.
func (t *RecipeTable) LookupKey(key values.RecipeKey) (string, bool) {
	result, ok := t.results[key.String()]
	return result, ok
}

// Bind records a recipe. If the key is already bound the call is a no-op and
// the existing result is returned with created=false, whatever result was
// passed. This keeps concurrent first-time combinations from rebinding.
func (t *RecipeTable) Bind(a, b, result string) (bound string, created bool) {
	return t.BindKey(values.NewRecipeKey(a, b), result)
}

// BindKey is Bind for a prebuilt key.
func (t *RecipeTable) BindKey(key values.RecipeKey, result string) (bound string, created bool) {
	if existing, ok := t.results[key.String()]; ok {
		return existing, false
	}
	result = values.Canonicalize(result)
	t.results[key.String()] = result
	return result, true
}

// AllResultNames returns every bound result, sorted and de-duplicated.
func (t *RecipeTable) AllResultNames() []string {
	names := slices.Collect(maps.Values(t.results))
	slices.Sort(names)
	return slices.Compact(names)
}

// Keys returns every serialized key in sorted order.
func (t *RecipeTable) Keys() []string {
	return slices.Sorted(maps.Keys(t.results))
}

// Entries returns a copy of the serialized key to result mapping.
func (t *RecipeTable) Entries() map[string]string {
	return maps.Clone(t.results)
}

// Len returns the number of recipes.
func (t *RecipeTable) Len() int {
	return len(t.results)
}

// Clone returns a deep copy.
func (t *RecipeTable) Clone() *RecipeTable {
	return &RecipeTable{results: maps.Clone(t.results)}
}

// Equals compares contents.
func (t *RecipeTable) Equals(other *RecipeTable) bool {
	return maps.Equal(t.results, other.results)
}
