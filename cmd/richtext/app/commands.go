package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/richtext/cmd/richtext/cmd/describe"
	"github.com/agentstation/richtext/cmd/richtext/cmd/join"
	"github.com/agentstation/richtext/internal/cmd/output"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(join.NewCommand(a))
	rootCmd.AddCommand(describe.NewCommand(a))
	rootCmd.AddCommand(a.NewVersionCommand())
}

// VersionInfo is the structured form of the version command output.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := output.Format(a.OutputFormat())
			if format != output.FormatText {
				info := VersionInfo{
					Version: a.version,
					Commit:  a.commit,
					Date:    a.date,
					BuiltBy: a.builtBy,
				}
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "richtext %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(w, "  commit:   %s\n", a.commit)
				fmt.Fprintf(w, "  built:    %s\n", a.date)
				fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
			}
			return nil
		},
	}
}
