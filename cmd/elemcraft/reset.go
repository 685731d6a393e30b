package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(global *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all progress and start over",
		Long: `Delete saved progress and restore the built-in starting elements and
recipes. Prompts for confirmation unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: withGame(global, func(c *CommandContext, _ *cobra.Command, _ []string) error {
			if !yes {
				confirmed := false
				err := huh.NewConfirm().
					Title("Reset all progress?").
					Description("All discovered elements and recipes will be lost.").
					Affirmative("Reset").
					Negative("Cancel").
					Value(&confirmed).
					Run()
				if err != nil {
					return fmt.Errorf("confirmation failed (use --yes to skip): %w", err)
				}
				if !confirmed {
					fmt.Fprintln(c.Out, "Reset cancelled.")
					return nil
				}
			}

			if err := c.Game.Reset(c.Context); err != nil {
				c.Logger.Warn("reset progress could not be saved", "error", err)
			}
			fmt.Fprintln(c.Out, "Progress reset.")
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
