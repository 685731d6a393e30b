package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elemcraft/elemcraft/internal/application/dto"
	apperrors "github.com/elemcraft/elemcraft/internal/application/errors"
)

func newCombineCmd(global *globalOptions) *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:   "combine <element> <element> | combine <element>+<element>",
		Short: "Combine two elements",
		Long: `Combine two elements and report the result. Known recipes return their
bound result; unknown pairs generate a new element that is remembered from
then on. Names are case-insensitive; quote names with spaces ("Big Bang").`,
		Example: `  elemcraft combine Water Fire
  elemcraft combine Steam+Metal
  elemcraft combine "Big Bang" Life --format json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: withGame(global, func(c *CommandContext, _ *cobra.Command, args []string) error {
			if err := opts.ValidateFlags(); err != nil {
				return err
			}
			a, b, err := combineArgs(args)
			if err != nil {
				return err
			}
			return runCombine(c, a, b, opts.Format, global.noColor)
		}),
	}
	opts.RegisterFlags(cmd)
	return cmd
}

// combineArgs accepts either two arguments or a single "A+B" argument.
func combineArgs(args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	a, b, ok := strings.Cut(args[0], "+")
	if !ok {
		return "", "", fmt.Errorf("expected two elements or <a>+<b>, got %q", args[0])
	}
	return strings.TrimSpace(a), strings.TrimSpace(b), nil
}

func runCombine(c *CommandContext, a, b, format string, noColor bool) error {
	res, err := c.Game.Combine(c.Context, a, b)
	if err != nil {
		var invalid *apperrors.InvalidInputError
		if errors.As(err, &invalid) {
			return fmt.Errorf("cannot combine %s and %s: %w", a, b, err)
		}
		return err
	}

	if shouldSave(res) {
		if err := c.Game.Save(c.Context); err != nil {
			c.Logger.Warn("progress not saved", "error", err)
			res.Notices = append(res.Notices, dto.Notice{
				Kind:    dto.NoticePersistence,
				Message: "Could not save progress. Your discovery is kept for this session only.",
				IsError: true,
			})
		}
	}

	formatter, err := c.Formatter(format, noColor)
	if err != nil {
		return err
	}
	return formatter.Combine(res)
}

// shouldSave reports whether a combine changed persisted state.
func shouldSave(res dto.CombineResult) bool {
	if res.IsNewDiscovery || res.Generated {
		return true
	}
	for _, n := range res.Notices {
		if n.Kind == dto.NoticeIntegrity {
			return true
		}
	}
	return false
}
