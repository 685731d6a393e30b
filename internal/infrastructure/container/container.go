// Package container provides dependency injection for the application.
package container

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/elemcraft/elemcraft/internal/application/ports"
	"github.com/elemcraft/elemcraft/internal/application/services"
	domainservices "github.com/elemcraft/elemcraft/internal/domain/services"
	"github.com/elemcraft/elemcraft/internal/infrastructure/output"
	"github.com/elemcraft/elemcraft/internal/infrastructure/persistence/file"
	"github.com/elemcraft/elemcraft/internal/infrastructure/persistence/memory"
	"github.com/elemcraft/elemcraft/internal/infrastructure/persistence/record"
	"github.com/elemcraft/elemcraft/internal/infrastructure/persistence/sqlite"
	"github.com/elemcraft/elemcraft/internal/infrastructure/random"
	"github.com/elemcraft/elemcraft/internal/infrastructure/seed"
	"github.com/elemcraft/elemcraft/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	store            ports.SaveStore
	codec            ports.RecordCodec
	formatterFactory ports.OutputFormatterFactory
	game             *services.Game
	session          *services.SessionService
	rand             *random.Source
	systemCfg        *system.Config
	logger           *slog.Logger
	closers          []io.Closer
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger

	// Config is the merged system configuration. Nil means DefaultConfig.
	Config *system.Config

	// Store overrides the configured storage backend.
	Store ports.SaveStore
}

// New creates a new dependency injection container.
func New(ctx context.Context, opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = system.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	c := &Container{
		systemCfg:        cfg,
		logger:           opts.Logger,
		codec:            record.NewCodec(),
		formatterFactory: output.NewFormatterFactory(),
	}

	c.store = opts.Store
	if c.store == nil {
		store, closer, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		c.store = store
		if closer != nil {
			c.closers = append(c.closers, closer)
		}
	}

	seedProvider := seed.NewProvider()
	bundle, err := seedProvider.Load()
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.rand = random.NewSource(cfg.Generator.Seed)
	generator, err := domainservices.NewNameGenerator(
		cfg.GeneratorSettings(),
		bundle.BaseElements,
		c.rand,
		random.SystemClock{},
	)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to build name generator: %w", err)
	}

	c.session = services.NewSessionService(
		c.store,
		c.codec,
		seedProvider,
		services.SessionOptions{
			Key:               cfg.Storage.Key,
			RevealSeedResults: cfg.Game.RevealSeedResults,
		},
		opts.Logger,
	)
	engine := services.NewCombinationEngine(generator, c.session.Reconciler(), opts.Logger)
	c.game = services.NewGame(engine, c.session, opts.Logger)

	opts.Logger.Debug("container ready",
		"backend", string(cfg.Storage.Backend),
		"key", cfg.Storage.Key,
		"seed", c.rand.Seed())
	return c, nil
}

func openStore(ctx context.Context, cfg *system.Config) (ports.SaveStore, io.Closer, error) {
	switch cfg.Storage.Backend {
	case system.StorageMemory:
		return memory.NewSaveStore(), nil, nil
	case system.StorageSQLite:
		store, err := sqlite.Open(ctx, cfg.StoragePath())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		return store, store, nil
	default:
		store, err := file.NewSaveStore(cfg.StoragePath())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		return store, nil, nil
	}
}

// Game returns the game facade.
func (c *Container) Game() *services.Game {
	return c.game
}

// Session returns the session service.
func (c *Container) Session() *services.SessionService {
	return c.session
}

// Store returns the save store.
func (c *Container) Store() ports.SaveStore {
	return c.store
}

// Codec returns the record codec.
func (c *Container) Codec() ports.RecordCodec {
	return c.codec
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// RandomSeed returns the effective generator seed.
func (c *Container) RandomSeed() int64 {
	return c.rand.Seed()
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// Close releases storage handles.
func (c *Container) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
