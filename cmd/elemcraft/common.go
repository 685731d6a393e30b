package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var supportedFormats = []string{"table", "json", "yaml"}

// CommonOptions contains per-command output flags.
type CommonOptions struct {
	Format string
}

// DefaultCommonOptions returns defaults.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Format: "table",
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: table, json, yaml")
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	if !slices.Contains(supportedFormats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", opts.Format, supportedFormats)
	}
	return nil
}
