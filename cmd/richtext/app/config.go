package app

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/richtext"
	"github.com/agentstation/richtext/pkg/constants"
	"github.com/agentstation/richtext/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Join defaults
	Separator string
	Truncated string
	Limit     int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (RICHTEXT_ prefix)
// 3. .env files
// 4. Config file (~/.richtext.yaml or ./.richtext.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty path
// searches the standard locations and tolerates a missing file; an explicit
// path must exist and parse.
func LoadConfigFile(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("separator", constants.DefaultSeparator)
	v.SetDefault("truncated", constants.DefaultTruncated)
	v.SetDefault("limit", constants.DefaultLimit)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "failed to read "+path, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "failed to read config file", err)
			}
		}
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Separator: v.GetString("separator"),
		Truncated: v.GetString("truncated"),
		Limit:     v.GetInt("limit"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}, nil
}

// UpdateFromFlags applies the flags that were set on the command line.
// Flags left unset keep the values loaded from config files and the
// environment.
func (c *Config) UpdateFromFlags(flags *pflag.FlagSet) error {
	bools := map[string]*bool{
		"verbose":  &c.Verbose,
		"quiet":    &c.Quiet,
		"no-color": &c.NoColor,
	}
	for name, dst := range bools {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	strs := map[string]*string{
		"format":    &c.Format,
		"log-level": &c.LogLevel,
	}
	for name, dst := range strs {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	return nil
}

// JoinDefaults converts the configured separator, truncation marker and
// limit into join options. An empty configured string is kept as an
// empty component rather than replaced by the library default.
func (c *Config) JoinDefaults() richtext.JoinOptions {
	opts := richtext.DefaultJoinOptions()
	opts.Separator = richtext.Text(c.Separator)
	opts.Truncated = richtext.Text(c.Truncated)
	opts.Limit = c.Limit
	return opts
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so it wins; godotenv never overrides
// variables that are already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
