package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(global *globalOptions) *cobra.Command {
	opts := CommonOptions{Format: "json"}
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved progress",
		Long: `Write the current progress. JSON output uses the same record format as the
save file; YAML output mirrors the built-in seed data layout; table prints a
summary.`,
		Args: cobra.NoArgs,
		RunE: withGame(global, func(c *CommandContext, _ *cobra.Command, _ []string) error {
			if err := opts.ValidateFlags(); err != nil {
				return err
			}
			world, err := c.Game.Snapshot()
			if err != nil {
				return err
			}

			if outFile != "" {
				//nolint:gosec // G304: user-specified output path
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				c.Out = f
			}

			formatter, err := c.Formatter(opts.Format, global.noColor)
			if err != nil {
				return err
			}
			if err := formatter.World(world); err != nil {
				return err
			}
			if outFile != "" {
				c.Logger.Info("progress exported", "file", outFile)
			}
			return nil
		}),
	}
	opts.RegisterFlags(cmd)
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}
