package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"poncoocr/cmd/version"
	options "poncoocr/config"
	"poncoocr/infrastructure/config"
)

// RootOptions holds the global flags shared by every subcommand.
type RootOptions struct {
	ConfigPath   string
	OutputFormat string
	LogLevel     string
	LogFormat    string
}

// NewRootCommand creates the poncoocr root command. Every registry option is
// exposed as a persistent flag; the configuration is loaded before any
// subcommand runs.
func NewRootCommand(container *config.Container) (*cobra.Command, error) {
	opts := &RootOptions{}

	rootCmd := &cobra.Command{
		Use:   "poncoocr",
		Short: "poncoocr pipeline configuration",
		Long: `Resolves and inspects the configuration of the poncoocr character
recognition pipeline: dataset locations, model architecture, embedding
sprites and training hyperparameters.`,
		Version:       version.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := ValidateFormat(opts.OutputFormat); err != nil {
				return err
			}
			return container.Load(cmd.Flags(), opts.ConfigPath)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, options.ConfigFileFlag, options.ShortConfigFileFlag, "", "Path to the configuration file (default: search for poncoocr.yaml).")
	flags.StringVarP(&opts.OutputFormat, options.OutputTypeFlag, options.ShortOutputTypeFlag, OutputFormatYAML, "Output type (yaml, json).")
	flags.StringVarP(&opts.LogLevel, options.LogLevelFlag, options.ShortLogLevelFlag, "", "Logging level (error, warn, info, debug).")
	flags.StringVar(&opts.LogFormat, options.LogFormatFlag, "", "Logging format (text, json).")

	if err := container.Registry.BindFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to register option flags: %w", err)
	}

	rootCmd.AddCommand(
		NewConfigCommand(container, opts),
		NewFlagsCommand(container, opts),
		NewConstantsCommand(opts),
		NewCheckCommand(container, opts),
		NewVersionCommand(),
	)

	return rootCmd, nil
}
