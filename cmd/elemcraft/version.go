package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elemcraft/elemcraft/internal/version"
)

// newVersionCmd implements the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of elemcraft",
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "elemcraft version %s\n", info.Full())
		},
	}
}
