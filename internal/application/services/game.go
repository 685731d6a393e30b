package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/elemcraft/elemcraft/internal/application/dto"
	apperrors "github.com/elemcraft/elemcraft/internal/application/errors"
	"github.com/elemcraft/elemcraft/internal/domain/entities"
	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// Game owns the world state and exposes the engine operations. All methods
// are safe for concurrent use; state changes are serialized.
type Game struct {
	engine   *CombinationEngine
	session  *SessionService
	logger   *slog.Logger
	world    *entities.World
	collator *collate.Collator
	flight   singleflight.Group
	mu       sync.Mutex
}

// NewGame creates a game. Load must be called before any other operation.
func NewGame(engine *CombinationEngine, session *SessionService, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		engine:   engine,
		session:  session,
		logger:   logger,
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// Load replaces the in-memory world with the persisted one, falling back to
// seed state.
func (g *Game) Load(ctx context.Context) {
	world := g.session.Load(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.world = world
}

// Save persists the current world.
func (g *Game) Save(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.world == nil {
		return apperrors.ErrNotLoaded
	}
	return g.session.Save(ctx, g.world)
}

// Reset discards all progress and installs a fresh seed world. A returned
// PersistenceError means the reset world could not be saved; play continues.
func (g *Game) Reset(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	world, err := g.session.Reset(ctx)
	g.world = world
	return err
}

// Combine resolves a and b. Concurrent calls for the same unordered pair
// share one resolution; only the caller that ran it sees IsNewDiscovery or
// Generated, the others get the plain combination of the bound recipe.
func (g *Game) Combine(ctx context.Context, a, b string) (dto.CombineResult, error) {
	if err := ctx.Err(); err != nil {
		return dto.CombineResult{}, err
	}

	led := false
	key := values.NewRecipeKey(a, b).String()
	v, err, _ := g.flight.Do(key, func() (any, error) {
		led = true
		return g.combineLocked(a, b)
	})
	if err != nil || led {
		return v.(dto.CombineResult), err
	}
	return g.combineLocked(a, b)
}

func (g *Game) combineLocked(a, b string) (dto.CombineResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.world == nil {
		return dto.CombineResult{}, apperrors.ErrNotLoaded
	}
	return g.engine.Combine(g.world, a, b)
}

// Place validates id and returns a new workspace instance of it.
func (g *Game) Place(id string) (dto.WorkspaceInstance, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.world == nil {
		return dto.WorkspaceInstance{}, apperrors.ErrNotLoaded
	}
	name, err := values.ParseElementName(id)
	if err != nil {
		return dto.WorkspaceInstance{}, apperrors.NewInvalidInputError(id, err.Error())
	}
	if !g.world.Vocabulary.Has(name) {
		return dto.WorkspaceInstance{}, apperrors.NewInvalidInputError(name, "no element record")
	}
	return dto.WorkspaceInstance{
		ID:      g.world.NextInstanceID(),
		Element: name,
	}, nil
}

// LookupRecord returns the record for id, or the unknown sentinel when the
// vocabulary has none.
func (g *Game) LookupRecord(id string) dto.ElementView {
	g.mu.Lock()
	defer g.mu.Unlock()

	name := values.Canonicalize(strings.TrimSpace(id))
	if g.world == nil {
		return g.view(name, entities.UnknownRecord(), false, false)
	}
	rec, known := g.world.Vocabulary.Lookup(name)
	if !known {
		rec = entities.UnknownRecord()
	}
	return g.view(name, rec, known, g.world.Discovered.Has(name))
}

// ListDiscovered returns discovered elements matching filter, sorted by name.
// Discovered names without a record are skipped.
func (g *Game) ListDiscovered(filter dto.ListFilter) ([]dto.ElementView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.world == nil {
		return nil, apperrors.ErrNotLoaded
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	var names []string
	for _, name := range g.world.Discovered.Names() {
		if query != "" && !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		if !g.world.Vocabulary.Has(name) {
			g.logger.Warn("discovered element has no record, skipping", "element", name)
			continue
		}
		names = append(names, name)
	}
	g.collator.SortStrings(names)

	views := make([]dto.ElementView, 0, len(names))
	for _, name := range names {
		views = append(views, g.view(name, g.world.Vocabulary.Get(name), true, true))
	}
	return views, nil
}

// Recipes returns every bound recipe sorted by key.
func (g *Game) Recipes() ([]dto.RecipeView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.world == nil {
		return nil, apperrors.ErrNotLoaded
	}

	entries := g.world.Recipes.Entries()
	views := make([]dto.RecipeView, 0, len(entries))
	for _, k := range g.world.Recipes.Keys() {
		key, err := values.ParseRecipeKey(k)
		if err != nil {
			continue
		}
		views = append(views, dto.RecipeView{
			Key:    k,
			First:  key.First(),
			Second: key.Second(),
			Result: entries[k],
		})
	}
	return views, nil
}

// Snapshot returns a deep copy of the current world.
func (g *Game) Snapshot() (*entities.World, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.world == nil {
		return nil, apperrors.ErrNotLoaded
	}
	return g.world.Clone(), nil
}

func (g *Game) view(name string, rec entities.ElementRecord, known, discovered bool) dto.ElementView {
	return dto.ElementView{
		Name:       name,
		Glyph:      rec.Glyph,
		Tags:       append([]string(nil), rec.Tags...),
		Known:      known,
		Discovered: discovered,
	}
}
