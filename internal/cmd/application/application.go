// Package application defines the dependencies commands receive from the CLI app.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/richtext"
)

// Application is what subcommands need from the running app.
type Application interface {
	Logger() *zerolog.Logger
	OutputFormat() string
	JoinDefaults() richtext.JoinOptions
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
