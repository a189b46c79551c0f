package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/former/internal/formspec"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <form-file>",
		Short: "Check a form document without showing it",
		Long: `Parse a form document and check it: known row kinds, unique keys, selector
options and values. Every problem found is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootOpts, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, rootOpts *RootOptions, path string) error {
	log := NewLogger(cmd.ErrOrStderr(), rootOpts.Debug).WithField("component", "cli")
	log.WithField("form", path).Debug("Validating form")

	doc, err := formspec.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", path)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d section(s), %d row(s)\n", path, len(doc.Sections), doc.RowCount())
	return nil
}
