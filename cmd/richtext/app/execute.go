package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/richtext/internal/cmd/alerts"
	"github.com/agentstation/richtext/internal/cmd/output"
	"github.com/agentstation/richtext/pkg/logging"
)

// Execute runs the richtext CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "richtext",
		Short:   "Build and inspect rich text components",
		Version: a.version,
		Long: `Richtext joins plain items and YAML join documents into rich text
components and prints their plain text or their component tree.

Defaults for the separator, truncation marker and limit are read from
~/.richtext.yaml, .env files and RICHTEXT_* environment variables.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	// Flags are not bound to the config so that an unset flag never
	// overwrites a value from the environment or a config file.
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.richtext.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringP("format", "o", "", "output format: text, table, json, yaml")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("richtext {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		config, err := LoadConfigFile(mustGetString(cmd, "config"))
		if err != nil {
			return err
		}
		a.config = config
	}

	if err := a.config.UpdateFromFlags(cmd.Flags()); err != nil {
		return err
	}

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	cmd.SetContext(logging.WithOperation(ctx, cmd.Name()))
	logging.Debug().
		Str("command", cmd.Name()).
		Str("config_file", a.config.ConfigFile).
		Msg("Command setup")

	return nil
}

// ReportError writes err to stderr as an alert in the configured format.
func (a *App) ReportError(err error) {
	a.reportError(os.Stderr, err)
}

func (a *App) reportError(w io.Writer, err error) {
	writer := alerts.NewWriter(w, output.Format(a.OutputFormat()), a.config.NoColor)
	if werr := writer.Write(alerts.FromError(err)); werr != nil {
		logging.Err(werr).Msg("Failed to write error")
	}
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
