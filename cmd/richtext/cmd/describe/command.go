// Package describe implements the describe command.
package describe

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/richtext/internal/cmd/application"
	"github.com/agentstation/richtext/internal/cmd/output"
	"github.com/agentstation/richtext/pkg/document"
	"github.com/agentstation/richtext/pkg/logging"
)

// NewCommand creates the describe command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "describe <file.yaml>",
		GroupID: "core",
		Short:   "Build a join document and print the resulting component",
		Long: `Describe loads a YAML join document, builds its items into components,
joins them and prints the result.

With the default text format the plain text of the component is printed.
Use --format table, json or yaml to see the component tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			ctx = logging.WithOperation(ctx, "describe")
			ctx = logging.WithField(ctx, "format", string(format))

			doc, err := document.Load(ctx, args[0])
			if err != nil {
				return err
			}
			c, err := doc.Build(ctx, app.JoinDefaults())
			if err != nil {
				return err
			}

			return output.WriteComponent(cmd.OutOrStdout(), c, format)
		},
	}
}
