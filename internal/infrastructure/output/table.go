package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/elemcraft/elemcraft/internal/application/dto"
	"github.com/elemcraft/elemcraft/internal/domain/entities"
)

// TableFormatter formats results for a terminal.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

type tableStyles struct {
	header    lipgloss.Style
	discovery lipgloss.Style
	name      lipgloss.Style
	muted     lipgloss.Style
	warning   lipgloss.Style
	failure   lipgloss.Style
}

func (f *TableFormatter) styles() tableStyles {
	if !f.EnableColor {
		plain := lipgloss.NewStyle()
		return tableStyles{plain, plain, plain, plain, plain, plain}
	}
	return tableStyles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		discovery: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),
		name: lipgloss.NewStyle().
			Bold(true),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		failure: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}

// Combine writes the notices of a combine result, or a one-line summary when
// there are none.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Combine(result dto.CombineResult) error {
	s := f.styles()
	if len(result.Notices) == 0 {
		fmt.Fprintf(f.writer, "%s + %s = %s %s\n",
			result.Inputs[0], result.Inputs[1], result.Glyph, s.name.Render(result.Result))
		return nil
	}
	for _, n := range result.Notices {
		var style lipgloss.Style
		switch {
		case n.IsError:
			style = s.failure
		case n.Kind == dto.NoticeDiscovery:
			style = s.discovery
		case n.Kind == dto.NoticeIntegrity || n.Kind == dto.NoticePersistence:
			style = s.warning
		default:
			style = s.name
		}
		fmt.Fprintln(f.writer, style.Render(n.Message))
	}
	if len(result.Tags) > 0 {
		fmt.Fprintln(f.writer, s.muted.Render("tags: "+strings.Join(result.Tags, ", ")))
	}
	return nil
}

// Placement writes a workspace instance.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Placement(instance dto.WorkspaceInstance) error {
	s := f.styles()
	fmt.Fprintf(f.writer, "Placed %s as %s\n", s.name.Render(instance.Element), s.muted.Render(instance.ID))
	return nil
}

// Element writes one element's record.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Element(view dto.ElementView) error {
	s := f.styles()
	status := "discovered"
	switch {
	case !view.Known:
		status = "unknown"
	case !view.Discovered:
		status = "not yet discovered"
	}
	fmt.Fprintf(f.writer, "%s %s  %s\n", view.Glyph, s.name.Render(view.Name), s.muted.Render("("+status+")"))
	if len(view.Tags) > 0 {
		fmt.Fprintln(f.writer, s.muted.Render("tags: "+strings.Join(view.Tags, ", ")))
	}
	return nil
}

// Elements writes the palette.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Elements(views []dto.ElementView) error {
	s := f.styles()
	fmt.Fprintln(f.writer, s.header.Render(fmt.Sprintf("Elements (%d)", len(views))))
	if len(views) == 0 {
		fmt.Fprintln(f.writer, s.muted.Render("No elements match."))
		return nil
	}
	width := 0
	for _, v := range views {
		width = max(width, lipgloss.Width(v.Name))
	}
	for _, v := range views {
		name := v.Name + strings.Repeat(" ", width-lipgloss.Width(v.Name))
		fmt.Fprintf(f.writer, "  %s %s  %s\n", v.Glyph, s.name.Render(name), s.muted.Render(strings.Join(v.Tags, ", ")))
	}
	return nil
}

// Recipes writes the recipe table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Recipes(recipes []dto.RecipeView) error {
	s := f.styles()
	fmt.Fprintln(f.writer, s.header.Render(fmt.Sprintf("Recipes (%d)", len(recipes))))
	width := 0
	for _, r := range recipes {
		width = max(width, lipgloss.Width(r.First+" + "+r.Second))
	}
	for _, r := range recipes {
		pair := r.First + " + " + r.Second
		fmt.Fprintf(f.writer, "  %s%s = %s\n", pair, strings.Repeat(" ", width-lipgloss.Width(pair)), s.name.Render(r.Result))
	}
	return nil
}

// World writes a summary of the world.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) World(world *entities.World) error {
	s := f.styles()
	fmt.Fprintln(f.writer, s.header.Render("Progress"))
	if world.SessionID != "" {
		fmt.Fprintf(f.writer, "  session:    %s\n", world.SessionID)
	}
	fmt.Fprintf(f.writer, "  discovered: %d\n", world.Discovered.Len())
	fmt.Fprintf(f.writer, "  recipes:    %d\n", world.Recipes.Len())
	fmt.Fprintf(f.writer, "  elements:   %d\n", world.Vocabulary.Len())
	return nil
}
