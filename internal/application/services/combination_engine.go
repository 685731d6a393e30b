package services

import (
	"fmt"
	"log/slog"

	"github.com/elemcraft/elemcraft/internal/application/dto"
	apperrors "github.com/elemcraft/elemcraft/internal/application/errors"
	"github.com/elemcraft/elemcraft/internal/domain/entities"
	"github.com/elemcraft/elemcraft/internal/domain/services"
	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// CombinationEngine resolves pairs of elements against a world. It performs
// no locking and no I/O; callers own the world and serialize access.
type CombinationEngine struct {
	generator  *services.NameGenerator
	reconciler *services.Reconciler
	logger     *slog.Logger
}

// NewCombinationEngine creates a combination engine.
func NewCombinationEngine(
	generator *services.NameGenerator,
	reconciler *services.Reconciler,
	logger *slog.Logger,
) *CombinationEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &CombinationEngine{
		generator:  generator,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Combine resolves a and b to a single result, generating and binding a new
// element when no recipe exists. Both inputs must name elements with a
// vocabulary record; otherwise an InvalidInputError is returned and the world
// is left untouched.
func (e *CombinationEngine) Combine(world *entities.World, rawA, rawB string) (dto.CombineResult, error) {
	a, err := e.validateInput(world, rawA)
	if err != nil {
		return dto.CombineResult{}, err
	}
	b, err := e.validateInput(world, rawB)
	if err != nil {
		return dto.CombineResult{}, err
	}

	key := values.NewRecipeKey(a, b)
	out := dto.CombineResult{Inputs: [2]string{a, b}}

	if bound, ok := world.Recipes.LookupKey(key); ok {
		out.Result = values.Canonicalize(bound)
		if notice, faulted := e.ensureRecord(world, out.Result); faulted {
			out.Notices = append(out.Notices, notice)
		}
		out.IsNewDiscovery = !world.Discovered.Has(out.Result)
	} else {
		gen := e.generator.Generate(world, a, b)
		if gen.Exhausted {
			e.logger.Warn("name generation exhausted",
				"error", apperrors.NewGenerationExhaustedError(gen.Candidate, gen.Name, gen.Attempts))
		}
		result, created := e.bindGenerated(world, key, gen.Name)
		out.Result = result
		out.Generated = created
		out.IsNewDiscovery = !world.Discovered.Has(result)
		e.logger.Debug("generated element",
			"recipe", key.String(),
			"result", gen.Name,
			"candidate", gen.Candidate,
			"template", string(gen.Template),
			"attempts", gen.Attempts)
	}

	if out.IsNewDiscovery {
		world.Discovered.Add(out.Result)
	}

	rec := world.Vocabulary.Get(out.Result)
	out.Glyph = rec.Glyph
	out.Tags = append([]string(nil), rec.Tags...)
	out.Notices = append(out.Notices, e.outcomeNotice(world, out))

	return out, nil
}

// bindGenerated binds name under key. An existing binding is kept and the
// refused rebind is logged.
func (e *CombinationEngine) bindGenerated(world *entities.World, key values.RecipeKey, name string) (string, bool) {
	bound, created := world.Recipes.BindKey(key, name)
	if !created {
		e.logger.Warn("recipe already bound, keeping existing result",
			"recipe", key.String(),
			"existing", bound,
			"generated", name)
	}
	return bound, created
}

func (e *CombinationEngine) validateInput(world *entities.World, raw string) (string, error) {
	name, err := values.ParseElementName(raw)
	if err != nil {
		return "", apperrors.NewInvalidInputError(raw, err.Error())
	}
	if !world.Vocabulary.Has(name) {
		return "", apperrors.NewInvalidInputError(name, "no element record")
	}
	return name, nil
}

// ensureRecord restores a missing record for a recipe result. The returned
// notice is meaningful only when faulted is true.
func (e *CombinationEngine) ensureRecord(world *entities.World, name string) (dto.Notice, bool) {
	if world.Vocabulary.Has(name) {
		return dto.Notice{}, false
	}

	rec, fromSeed := e.reconciler.RecoverRecord(world, name)
	world.Vocabulary.Set(name, rec)

	var fault *apperrors.IntegrityError
	if fromSeed {
		fault = apperrors.NewIntegrityError(name, "record restored from seed data", true)
	} else {
		fault = apperrors.NewIntegrityError(name, "record lost, placeholder installed", false)
	}
	e.logger.Warn("recipe result had no record", "error", fault)

	return dto.Notice{
		Kind:    dto.NoticeIntegrity,
		Message: fmt.Sprintf("Data for %s was missing and has been restored.", name),
		IsError: !fromSeed,
	}, true
}

func (e *CombinationEngine) outcomeNotice(world *entities.World, out dto.CombineResult) dto.Notice {
	label := func(name string) string {
		return fmt.Sprintf("%s %s", world.Vocabulary.Get(name).Glyph, name)
	}
	if out.IsNewDiscovery {
		return dto.Notice{
			Kind:    dto.NoticeDiscovery,
			Message: fmt.Sprintf("New Discovery: %s!", label(out.Result)),
		}
	}
	return dto.Notice{
		Kind: dto.NoticeCombined,
		Message: fmt.Sprintf("Combined %s + %s = %s.",
			label(out.Inputs[0]), label(out.Inputs[1]), label(out.Result)),
	}
}
