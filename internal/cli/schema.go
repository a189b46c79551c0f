package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ytget/former/internal/formspec"
	"github.com/ytget/former/internal/platform"
)

// SchemaOptions holds flags of the schema command.
type SchemaOptions struct {
	Output string
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SchemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of form documents",
		Long: `Print the JSON Schema of form documents, for editor completion and
validation of YAML and JSON forms.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the schema to a file instead of stdout")

	return cmd
}

func runSchema(cmd *cobra.Command, opts *SchemaOptions) error {
	data, err := formspec.Schema()
	if err != nil {
		return err
	}
	if opts.Output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(opts.Output)); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", opts.Output, err)
	}
	if err := os.WriteFile(opts.Output, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Schema written to %s\n", opts.Output)
	return nil
}
