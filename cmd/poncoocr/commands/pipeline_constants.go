package commands

import (
	"github.com/spf13/cobra"
	options "poncoocr/config"
)

// NewConstantsCommand creates the constants command.
func NewConstantsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the shared pipeline constants",
		Long:  "Prints image and thumbnail shapes, the embedding size, the label metadata file and the embedding tensor names.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return NewOutputFormatter(opts.OutputFormat, cmd.OutOrStdout()).Print(options.SharedConstants())
		},
	}
}
