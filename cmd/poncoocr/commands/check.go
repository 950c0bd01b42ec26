package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"poncoocr/infrastructure/config"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(container *config.Container, opts *RootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the configured paths exist",
		Long: `Inspects the dataset directories, the model architecture file and the
sprite directory. Nothing is created. With --strict the command fails when
any path is missing or has the wrong kind.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets := container.Config.PathTargets(container.Registry)

			report, err := container.InspectPathsUseCase.Execute(cmd.Context(), targets)
			if err != nil {
				return fmt.Errorf("failed to inspect paths: %w", err)
			}

			if err := NewOutputFormatter(opts.OutputFormat, cmd.OutOrStdout()).Print(report); err != nil {
				return err
			}

			if strict && !report.OK() {
				return fmt.Errorf("%d of %d paths are invalid", len(report.Invalid()), len(report.Paths))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any path is invalid.")

	return cmd
}
