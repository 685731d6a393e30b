package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/elemcraft/elemcraft/internal/application/dto"
	"github.com/elemcraft/elemcraft/internal/domain/entities"
	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// YAMLFormatter formats results as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

func (f *YAMLFormatter) write(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}

// Combine writes a combine result.
func (f *YAMLFormatter) Combine(result dto.CombineResult) error {
	return f.write(result)
}

// Placement writes a workspace instance.
func (f *YAMLFormatter) Placement(instance dto.WorkspaceInstance) error {
	return f.write(instance)
}

// Element writes one element.
func (f *YAMLFormatter) Element(view dto.ElementView) error {
	return f.write(view)
}

// Elements writes a list of elements.
func (f *YAMLFormatter) Elements(views []dto.ElementView) error {
	return f.write(views)
}

// Recipes writes the recipe table.
func (f *YAMLFormatter) Recipes(recipes []dto.RecipeView) error {
	return f.write(recipes)
}

type worldDocument struct {
	Session    string            `yaml:"session,omitempty"`
	Discovered []string          `yaml:"discovered"`
	Recipes    []recipeDocument  `yaml:"recipes"`
	Elements   []dto.ElementView `yaml:"elements"`
}

type recipeDocument struct {
	Inputs [2]string `yaml:"inputs,flow"`
	Result string    `yaml:"result"`
}

// World writes world as a readable YAML document, in the same shape as the
// built-in seed data.
func (f *YAMLFormatter) World(world *entities.World) error {
	doc := worldDocument{
		Session:    world.SessionID,
		Discovered: world.Discovered.Names(),
	}

	entries := world.Recipes.Entries()
	for _, k := range world.Recipes.Keys() {
		key, err := values.ParseRecipeKey(k)
		if err != nil {
			continue
		}
		doc.Recipes = append(doc.Recipes, recipeDocument{
			Inputs: [2]string{key.First(), key.Second()},
			Result: entries[k],
		})
	}

	for _, name := range world.Vocabulary.Names() {
		rec := world.Vocabulary.Get(name)
		doc.Elements = append(doc.Elements, dto.ElementView{
			Name:       name,
			Glyph:      rec.Glyph,
			Tags:       rec.Tags,
			Known:      true,
			Discovered: world.Discovered.Has(name),
		})
	}

	return f.write(doc)
}
