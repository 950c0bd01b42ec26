package commands

import (
	"github.com/spf13/cobra"
	"poncoocr/infrastructure/config"
)

// optionView is the listing form of a registered option.
type optionView struct {
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Default interface{} `json:"default"`
	Help    string      `json:"help"`
}

// NewFlagsCommand creates the flags command.
func NewFlagsCommand(container *config.Container, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List the registered options",
		Long:  "Lists every registered option with its type, default value and description.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registered := container.Registry.Options()
			views := make([]optionView, 0, len(registered))
			for _, opt := range registered {
				views = append(views, optionView{
					Name:    opt.Name,
					Type:    opt.Kind.String(),
					Default: opt.Default,
					Help:    opt.Help,
				})
			}
			return NewOutputFormatter(opts.OutputFormat, cmd.OutOrStdout()).Print(views)
		},
	}
}
