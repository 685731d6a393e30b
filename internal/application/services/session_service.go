package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/elemcraft/elemcraft/internal/application/errors"
	"github.com/elemcraft/elemcraft/internal/application/ports"
	"github.com/elemcraft/elemcraft/internal/domain/entities"
	"github.com/elemcraft/elemcraft/internal/domain/services"
)

// SessionOptions configures a SessionService.
type SessionOptions struct {
	// Key is the storage slot the world is saved under.
	Key string

	// RevealSeedResults marks every seed recipe result as discovered in a
	// fresh world.
	RevealSeedResults bool
}

// SessionService loads, saves and resets the persisted world.
type SessionService struct {
	store      ports.SaveStore
	codec      ports.RecordCodec
	seed       *entities.SeedBundle
	reconciler *services.Reconciler
	opts       SessionOptions
	logger     *slog.Logger
}

// NewSessionService creates a session service.
func NewSessionService(
	store ports.SaveStore,
	codec ports.RecordCodec,
	seed ports.SeedProvider,
	opts SessionOptions,
	logger *slog.Logger,
) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	bundle := seed.Seed()
	return &SessionService{
		store:      store,
		codec:      codec,
		seed:       bundle,
		reconciler: services.NewReconciler(bundle),
		opts:       opts,
		logger:     logger,
	}
}

// Reconciler exposes the reconciler bound to this session's seed data.
func (s *SessionService) Reconciler() *services.Reconciler {
	return s.reconciler
}

// Load returns the persisted world, or a fresh seed world when nothing usable
// is stored. Load never fails: unreadable or invalid records are discarded and
// replaced with seed state, which is saved immediately.
func (s *SessionService) Load(ctx context.Context) *entities.World {
	world, ok := s.read(ctx)
	if !ok {
		world = s.Fresh()
		if err := s.Save(ctx, world); err != nil {
			s.logger.Warn("could not save seed state", "error", err)
		}
	}

	report := s.reconciler.Reconcile(world)
	if len(report.BrokenBase) > 0 {
		s.logger.Error("base elements missing from seed data", "elements", report.BrokenBase)
	}
	if report.Changed() {
		s.logger.Warn("repaired loaded world",
			"restored_base", report.RestoredBase,
			"broken_base", report.BrokenBase,
			"dropped", report.Dropped)
	}

	s.logger.Info("world loaded",
		"from_save", ok,
		"discovered", world.Discovered.Len(),
		"recipes", world.Recipes.Len(),
		"elements", world.Vocabulary.Len())
	return world
}

func (s *SessionService) read(ctx context.Context) (*entities.World, bool) {
	data, found, err := s.store.Read(ctx, s.opts.Key)
	if err != nil {
		s.logger.Warn("could not read saved progress",
			"error", apperrors.NewPersistenceError("read", s.opts.Key, err))
		return nil, false
	}
	if !found {
		s.logger.Info("no saved progress, starting fresh", "key", s.opts.Key)
		return nil, false
	}

	world, err := s.codec.Decode(data)
	if err != nil {
		s.logger.Warn("saved progress is invalid or incompatible, resetting",
			"error", apperrors.NewPersistenceError("decode", s.opts.Key, err))
		if err := s.store.Remove(ctx, s.opts.Key); err != nil {
			s.logger.Warn("could not remove invalid save", "key", s.opts.Key, "error", err)
		}
		return nil, false
	}

	if world.SessionID == "" {
		world.SessionID = uuid.NewString()
	}
	return world, true
}

// Fresh builds a new world from seed data with a new session ID.
func (s *SessionService) Fresh() *entities.World {
	world, missing := s.seed.NewWorld(s.opts.RevealSeedResults)
	for _, name := range missing {
		s.logger.Warn("seed recipe result has no element data", "element", name)
	}
	world.SessionID = uuid.NewString()
	return world
}

// Save encodes and writes world.
func (s *SessionService) Save(ctx context.Context, world *entities.World) error {
	data, err := s.codec.Encode(world)
	if err != nil {
		return apperrors.NewPersistenceError("encode", s.opts.Key, err)
	}
	if err := s.store.Write(ctx, s.opts.Key, data); err != nil {
		return apperrors.NewPersistenceError("write", s.opts.Key, err)
	}
	s.logger.Debug("world saved", "key", s.opts.Key, "bytes", len(data))
	return nil
}

// Reset discards persisted progress and returns a fresh, saved seed world.
// A returned error is a PersistenceError; the world is still usable.
func (s *SessionService) Reset(ctx context.Context) (*entities.World, error) {
	if err := s.store.Remove(ctx, s.opts.Key); err != nil {
		s.logger.Warn("could not remove saved progress", "key", s.opts.Key, "error", err)
	}

	world := s.Fresh()
	s.reconciler.Reconcile(world)
	if err := s.Save(ctx, world); err != nil {
		return world, err
	}

	s.logger.Info("progress reset", "key", s.opts.Key)
	return world, nil
}
