package output

import (
	"encoding/json"
	"io"

	"github.com/elemcraft/elemcraft/internal/application/dto"
	"github.com/elemcraft/elemcraft/internal/domain/entities"
	"github.com/elemcraft/elemcraft/internal/infrastructure/persistence/record"
)

// JSONFormatter formats results as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

func (f *JSONFormatter) write(v any) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	if _, err := f.writer.Write(data); err != nil {
		return err
	}
	_, err = f.writer.Write([]byte("\n"))
	return err
}

// Combine writes a combine result.
func (f *JSONFormatter) Combine(result dto.CombineResult) error {
	return f.write(result)
}

// Placement writes a workspace instance.
func (f *JSONFormatter) Placement(instance dto.WorkspaceInstance) error {
	return f.write(instance)
}

// Element writes one element.
func (f *JSONFormatter) Element(view dto.ElementView) error {
	return f.write(view)
}

// Elements writes a list of elements.
func (f *JSONFormatter) Elements(views []dto.ElementView) error {
	if views == nil {
		views = []dto.ElementView{}
	}
	return f.write(views)
}

// Recipes writes the recipe table.
func (f *JSONFormatter) Recipes(recipes []dto.RecipeView) error {
	if recipes == nil {
		recipes = []dto.RecipeView{}
	}
	return f.write(recipes)
}

// World writes world in the persisted record format.
func (f *JSONFormatter) World(world *entities.World) error {
	return f.write(record.FromWorld(world))
}
