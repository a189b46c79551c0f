package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Debug bool
	// ConfigFile is the settings file; empty means the platform config directory
	ConfigFile string
}

// NewRootCommand creates the root command of the former CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "former",
		Short: "Declarative forms over a list control",
		Long: `Former renders form documents (YAML, TOML or JSON) as scrollable forms.

Rows are described in sections; selector rows expand an inline picker and text
rows stay visible above the on-screen keyboard or the terminal input panel.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "settings file (default is settings.toml in the config directory)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
