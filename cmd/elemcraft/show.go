package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd(global *globalOptions) *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:   "show <element>",
		Short: "Show an element's glyph and tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: withGame(global, func(c *CommandContext, _ *cobra.Command, args []string) error {
			if err := opts.ValidateFlags(); err != nil {
				return err
			}
			view := c.Game.LookupRecord(strings.Join(args, " "))
			formatter, err := c.Formatter(opts.Format, global.noColor)
			if err != nil {
				return err
			}
			return formatter.Element(view)
		}),
	}
	opts.RegisterFlags(cmd)
	return cmd
}
