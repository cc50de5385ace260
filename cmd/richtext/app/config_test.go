package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/agentstation/richtext/pkg/component"
	"github.com/agentstation/richtext/pkg/constants"
)

// TestLoadConfig verifies defaults when nothing is configured.
func TestLoadConfig(t *testing.T) {
	isolate(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Separator != constants.DefaultSeparator {
		t.Errorf("Separator = %q, want %q", config.Separator, constants.DefaultSeparator)
	}
	if config.Truncated != constants.DefaultTruncated {
		t.Errorf("Truncated = %q, want %q", config.Truncated, constants.DefaultTruncated)
	}
	if config.Limit != constants.DefaultLimit {
		t.Errorf("Limit = %d, want %d", config.Limit, constants.DefaultLimit)
	}
	if config.LogFormat != "auto" {
		t.Errorf("LogFormat = %q, want auto", config.LogFormat)
	}
	if config.ConfigFile != "" {
		t.Errorf("ConfigFile = %q, want empty", config.ConfigFile)
	}
}

// TestConfig_EnvironmentVariables verifies RICHTEXT_ environment variables.
func TestConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)
	t.Setenv("RICHTEXT_SEPARATOR", " | ")
	t.Setenv("RICHTEXT_LIMIT", "3")
	t.Setenv("RICHTEXT_FORMAT", "json")
	t.Setenv("RICHTEXT_LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Separator != " | " {
		t.Errorf("Separator = %q, want \" | \"", config.Separator)
	}
	if config.Limit != 3 {
		t.Errorf("Limit = %d, want 3", config.Limit)
	}
	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
}

// TestConfig_HomeFile verifies ~/.richtext.yaml is found.
func TestConfig_HomeFile(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	if err := os.WriteFile(filepath.Join(home, ".richtext.yaml"), []byte("truncated: \" (more)\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.Truncated != " (more)" {
		t.Errorf("Truncated = %q, want \" (more)\"", config.Truncated)
	}
	if filepath.Base(config.ConfigFile) != ".richtext.yaml" {
		t.Errorf("ConfigFile = %q", config.ConfigFile)
	}
}

// TestConfig_UpdateFromFlags verifies only flags set on the command line
// override loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	newFlags := func(args ...string) *pflag.FlagSet {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.BoolP("verbose", "v", false, "")
		flags.BoolP("quiet", "q", false, "")
		flags.Bool("no-color", false, "")
		flags.StringP("format", "o", "", "")
		flags.String("log-level", "", "")
		if err := flags.Parse(args); err != nil {
			t.Fatal(err)
		}
		return flags
	}

	config := &Config{Verbose: true, NoColor: true, Format: "yaml", LogLevel: "warn"}
	if err := config.UpdateFromFlags(newFlags()); err != nil {
		t.Fatal(err)
	}
	if !config.Verbose || !config.NoColor || config.Format != "yaml" || config.LogLevel != "warn" {
		t.Errorf("unset flags must not change config: %+v", config)
	}

	if err := config.UpdateFromFlags(newFlags("--verbose=false", "-q", "-o", "json", "--log-level", "error")); err != nil {
		t.Fatal(err)
	}
	if config.Verbose || !config.Quiet || !config.NoColor {
		t.Errorf("boolean flags not applied: %+v", config)
	}
	if config.Format != "json" || config.LogLevel != "error" {
		t.Errorf("Format/LogLevel = %q/%q, want json/error", config.Format, config.LogLevel)
	}
}

// TestConfig_JoinDefaults verifies an empty separator stays empty.
func TestConfig_JoinDefaults(t *testing.T) {
	config := &Config{Separator: "", Truncated: "…", Limit: 0}
	opts := config.JoinDefaults()

	if !component.IsEmpty(opts.Separator.AsComponent()) {
		t.Error("empty separator should be the empty component")
	}
	if got := component.PlainText(opts.Truncated); got != "…" {
		t.Errorf("Truncated = %q, want …", got)
	}
	if opts.Transform == nil {
		t.Error("Transform should default to identity")
	}
}
