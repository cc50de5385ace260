// Package join implements the join command.
package join

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/richtext"
	"github.com/agentstation/richtext/internal/cmd/application"
	"github.com/agentstation/richtext/internal/cmd/output"
	"github.com/agentstation/richtext/pkg/component"
	"github.com/agentstation/richtext/pkg/logging"
)

// Flags holds the join command flags.
type Flags struct {
	Separator string
	Prefix    string
	Suffix    string
	Limit     int
	Truncated string
	Color     string
	Bold      bool
}

// NewCommand creates the join command using app context.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "join [items...]",
		GroupID: "core",
		Short:   "Join text items into a single component",
		Long: `Join appends each argument as a text component to a fresh text
component, separated by the separator and wrapped in prefix and suffix.

When --limit is positive only that many items are joined and the
truncation marker is appended once in place of the rest.`,
		Example: `  richtext join alpha beta gamma
  richtext join a b c d --limit 2 --truncated " and more"
  richtext join Alex Steve --color gold --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.Separator, "separator", "s", "", "separator between items (default from config, then \", \")")
	cmd.Flags().StringVar(&flags.Prefix, "prefix", "", "text before the first item")
	cmd.Flags().StringVar(&flags.Suffix, "suffix", "", "text after the last item")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "maximum number of items, 0 or less for unlimited")
	cmd.Flags().StringVar(&flags.Truncated, "truncated", "", "marker appended when items are dropped (default \"...\")")
	cmd.Flags().StringVar(&flags.Color, "color", "", "color of the joined component, a name or #rrggbb")
	cmd.Flags().BoolVar(&flags.Bold, "bold", false, "make the joined component bold")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, flags *Flags, args []string) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	opts := app.JoinDefaults()
	if cmd.Flags().Changed("separator") {
		opts.Separator = richtext.Text(flags.Separator)
	}
	if flags.Prefix != "" {
		opts.Prefix = richtext.Text(flags.Prefix)
	}
	if flags.Suffix != "" {
		opts.Suffix = richtext.Text(flags.Suffix)
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit = flags.Limit
	}
	if cmd.Flags().Changed("truncated") {
		opts.Truncated = richtext.Text(flags.Truncated)
	}

	b := component.NewTextBuilder()
	if flags.Color != "" {
		color, err := richtext.Color(flags.Color)
		if err != nil {
			return err
		}
		b.ApplyStyle(color)
	}
	if flags.Bold {
		b.ApplyStyle(component.Bold)
	}

	items := make([]component.Component, len(args))
	for i, arg := range args {
		items[i] = richtext.Text(arg)
	}

	c := richtext.JoinTo(b, items, opts).Build()

	ctx := logging.WithFields(logging.WithLogger(cmd.Context(), app.Logger()), map[string]any{
		"items":  len(items),
		"limit":  opts.Limit,
		"format": string(format),
	})
	logging.Ctx(ctx).Debug().Msg("Joined items")

	return output.WriteComponent(cmd.OutOrStdout(), c, format)
}
