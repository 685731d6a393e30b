package ports

import (
	"io"

	"github.com/elemcraft/elemcraft/internal/application/dto"
	"github.com/elemcraft/elemcraft/internal/domain/entities"
)

// OutputFormatter renders engine results for the CLI.
type OutputFormatter interface {
	Combine(result dto.CombineResult) error
	Placement(instance dto.WorkspaceInstance) error
	Element(view dto.ElementView) error
	Elements(views []dto.ElementView) error
	Recipes(recipes []dto.RecipeView) error
	World(world *entities.World) error
}

// FormatterOptions contains options for creating formatters.
type FormatterOptions struct {
	Indent  bool
	NoColor bool
}

// OutputFormatterFactory creates output formatters.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
