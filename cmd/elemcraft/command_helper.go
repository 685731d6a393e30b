package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/elemcraft/elemcraft/internal/application/ports"
	"github.com/elemcraft/elemcraft/internal/application/services"
	"github.com/elemcraft/elemcraft/internal/infrastructure/container"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Game      *services.Game
	Logger    *slog.Logger
	Context   context.Context
	Out       io.Writer
}

// Formatter creates a formatter for the command's output.
func (c *CommandContext) Formatter(format string, noColor bool) (ports.OutputFormatter, error) {
	return c.Container.FormatterFactory().Create(format, c.Out, ports.FormatterOptions{
		Indent:  true,
		NoColor: noColor,
	})
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withGame wraps a command handler with container initialization and loads
// saved progress before the handler runs.
func withGame(opts *globalOptions, handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := opts.loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger := slog.Default()
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		c, err := container.New(ctx, container.Options{
			Config: cfg,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer func() {
			if err := c.Close(); err != nil {
				logger.Warn("failed to close storage", "error", err)
			}
		}()

		game := c.Game()
		game.Load(ctx)

		return handler(&CommandContext{
			Container: c,
			Game:      game,
			Logger:    logger,
			Context:   ctx,
			Out:       cmd.OutOrStdout(),
		}, cmd, args)
	}
}
