package main

import (
	"github.com/spf13/cobra"
)

func newRecipesCmd(global *globalOptions) *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List every known recipe",
		Args:  cobra.NoArgs,
		RunE: withGame(global, func(c *CommandContext, _ *cobra.Command, _ []string) error {
			if err := opts.ValidateFlags(); err != nil {
				return err
			}
			recipes, err := c.Game.Recipes()
			if err != nil {
				return err
			}
			formatter, err := c.Formatter(opts.Format, global.noColor)
			if err != nil {
				return err
			}
			return formatter.Recipes(recipes)
		}),
	}
	opts.RegisterFlags(cmd)
	return cmd
}
