package commands

import (
	"github.com/spf13/cobra"
	"poncoocr/infrastructure/config"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(container *config.Container, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after applying, in increasing precedence,
option defaults, the config file, PONCOOCR_* environment variables and flags.
Options without a default that were not set are printed as null.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewOutputFormatter(opts.OutputFormat, cmd.OutOrStdout()).Print(container.Config)
		},
	}
}
