package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/elemcraft/elemcraft/internal/application/dto"
)

func newListCmd(global *globalOptions) *cobra.Command {
	opts := DefaultCommonOptions()

	cmd := &cobra.Command{
		Use:     "list [filter]",
		Aliases: []string{"ls", "palette"},
		Short:   "List discovered elements",
		Long: `List discovered elements in alphabetical order. An optional filter keeps
only names containing it, ignoring case.`,
		Args: cobra.ArbitraryArgs,
		RunE: withGame(global, func(c *CommandContext, _ *cobra.Command, args []string) error {
			if err := opts.ValidateFlags(); err != nil {
				return err
			}
			views, err := c.Game.ListDiscovered(dto.ListFilter{Query: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			formatter, err := c.Formatter(opts.Format, global.noColor)
			if err != nil {
				return err
			}
			return formatter.Elements(views)
		}),
	}
	opts.RegisterFlags(cmd)
	return cmd
}
