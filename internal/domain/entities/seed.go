package entities

import (
	"fmt"
	"slices"

	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// SeedElement is one entry of the built-in vocabulary.
type SeedElement struct {
	Name   string        `yaml:"name"`
	Record ElementRecord `yaml:",inline"`
}

// SeedRecipe is one built-in recipe.
type SeedRecipe struct {
	Inputs [2]string `yaml:"inputs"`
	Result string    `yaml:"result"`
}

// SeedBundle is the immutable starting data for first run, reset and
// recovery of lost records.
type SeedBundle struct {
	BaseElements []string      `yaml:"base"`
	Elements     []SeedElement `yaml:"elements"`
	Recipes      []SeedRecipe  `yaml:"recipes"`
}

// Record returns a copy of the seed record for name.
func (b *SeedBundle) Record(name string) (ElementRecord, bool) {
	name = values.Canonicalize(name)
	for _, el := range b.Elements {
		if values.Canonicalize(el.Name) == name {
			return el.Record.Clone(), true
		}
	}
	return ElementRecord{}, false
}

// IsBase reports whether name is one of the base elements.
func (b *SeedBundle) IsBase(name string) bool {
	return slices.Contains(b.BaseElements, values.Canonicalize(name))
}

// Validate checks the bundle is internally consistent. Recipe results
// missing from the element list are reported by World building, not here.
func (b *SeedBundle) Validate() error {
	if len(b.BaseElements) == 0 {
		return fmt.Errorf("seed bundle: at least one base element is required")
	}
	for _, base := range b.BaseElements {
		if !values.IsCanonical(base) {
			return fmt.Errorf("seed bundle: base element %q is not canonical", base)
		}
	}
	seen := make(map[string]string)
	for i, r := range b.Recipes {
		if r.Result == "" {
			return fmt.Errorf("seed bundle: recipe %d has no result", i)
		}
		key := values.NewRecipeKey(r.Inputs[0], r.Inputs[1]).String()
		result := values.Canonicalize(r.Result)
		if prev, ok := seen[key]; ok && prev != result {
			return fmt.Errorf("seed bundle: recipe %s bound to both %q and %q", key, prev, result)
		}
		seen[key] = result
	}
	return nil
}

// NewWorld builds a fresh world from the bundle. The discovered set holds the
// base elements; with revealResults it also holds every recipe result that
// has a record. Results lacking a record are returned in missing.
func (b *SeedBundle) NewWorld(revealResults bool) (world *World, missing []string) {
	world = NewWorld()
	for _, el := range b.Elements {
		world.Vocabulary.Set(el.Name, el.Record)
	}
	for _, r := range b.Recipes {
		world.Recipes.Bind(r.Inputs[0], r.Inputs[1], r.Result)
	}
	for _, base := range b.BaseElements {
		world.Discovered.Add(base)
	}
	for _, result := range world.Recipes.AllResultNames() {
		if !world.Vocabulary.Has(result) {
			missing = append(missing, result)
			continue
		}
		if revealResults {
			world.Discovered.Add(result)
		}
	}
	return world, missing
}
