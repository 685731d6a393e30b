package main

import (
	"github.com/spf13/cobra"
)

func newPlaceCmd(global *globalOptions) *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:   "place <element>...",
		Short: "Place elements on the workspace",
		Long: `Place one or more elements on the workspace. Each placement gets a unique
instance ID of the form ws-el-N.`,
		Args: cobra.MinimumNArgs(1),
		RunE: withGame(global, func(c *CommandContext, _ *cobra.Command, args []string) error {
			if err := opts.ValidateFlags(); err != nil {
				return err
			}
			formatter, err := c.Formatter(opts.Format, global.noColor)
			if err != nil {
				return err
			}
			for _, id := range args {
				instance, err := c.Game.Place(id)
				if err != nil {
					return err
				}
				if err := formatter.Placement(instance); err != nil {
					return err
				}
			}
			return nil
		}),
	}
	opts.RegisterFlags(cmd)
	return cmd
}
