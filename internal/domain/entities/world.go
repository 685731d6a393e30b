package entities

import (
	"fmt"
	"slices"
)

// World is the aggregate root holding everything a player has learned.
//
// Invariants (after reconciliation):
// - Every base element is discovered and has a record
// - Every discovered element has a record
// - InstanceCounter never decreases except on reset
type World struct {
	Discovered      *DiscoveredSet
	Recipes         *RecipeTable
	Vocabulary      *Vocabulary
	SessionID       string
	InstanceCounter int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		Discovered: NewDiscoveredSet(),
		Recipes:    NewRecipeTable(),
		Vocabulary: NewVocabulary(),
	}
}

// KnownNames returns the names a freshly generated element must not collide
// with: the discovered set plus every recipe result.
func (w *World) KnownNames() map[string]bool {
	known := make(map[string]bool, w.Discovered.Len()+w.Recipes.Len())
	for _, name := range w.Discovered.Names() {
		known[name] = true
	}
	for _, name := range w.Recipes.AllResultNames() {
		known[name] = true
	}
	return known
}

// NextInstanceID returns a fresh workspace instance identifier.
func (w *World) NextInstanceID() string {
	id := fmt.Sprintf("ws-el-%d", w.InstanceCounter)
	w.InstanceCounter++
	return id
}

// DanglingDiscoveries lists discovered names with no vocabulary record.
func (w *World) DanglingDiscoveries() []string {
	var dangling []string
	for _, name := range w.Discovered.Names() {
		if !w.Vocabulary.Has(name) {
			dangling = append(dangling, name)
		}
	}
	return dangling
}

// Validate checks the structural invariant that discovered names have records
// and base elements are present.
func (w *World) Validate(baseElements []string) error {
	for _, base := range baseElements {
		if !w.Discovered.Has(base) {
			return fmt.Errorf("base element %q is not discovered", base)
		}
	}
	if dangling := w.DanglingDiscoveries(); len(dangling) > 0 {
		return fmt.Errorf("discovered elements without records: %v", dangling)
	}
	return nil
}

// Clone returns a deep copy sharing nothing with w.
func (w *World) Clone() *World {
	return &World{
		Discovered:      w.Discovered.Clone(),
		Recipes:         w.Recipes.Clone(),
		Vocabulary:      w.Vocabulary.Clone(),
		SessionID:       w.SessionID,
		InstanceCounter: w.InstanceCounter,
	}
}

// Equals compares the persisted triple. Session and instance counter are
// not part of the comparison.
func (w *World) Equals(other *World) bool {
	return w.Discovered.Equals(other.Discovered) &&
		w.Recipes.Equals(other.Recipes) &&
		w.Vocabulary.Equals(other.Vocabulary)
}

// SortedDiscovered returns discovered names in byte order.
func (w *World) SortedDiscovered() []string {
	names := w.Discovered.Names()
	slices.Sort(names)
	return names
}
