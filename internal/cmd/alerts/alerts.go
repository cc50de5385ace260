package alerts

import (
	stderrors "errors"
	"fmt"

	"github.com/agentstation/richtext/pkg/errors"
)

// Alert is a single notification.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// WithDetails appends detail lines.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns the one-line form of the alert.
func (a *Alert) String() string {
	msg := fmt.Sprintf("%s %s", a.Level.Icon(), a.Message)
	if a.Err != nil {
		msg += ": " + a.Err.Error()
	}
	return msg
}

// FromError turns a command error into an error alert, adding a hint for the
// typed errors the CLI knows how to explain.
func FromError(err error) *Alert {
	alert := &Alert{Level: LevelError, Message: err.Error()}

	var validation *errors.ValidationError
	var parse *errors.ParseError
	var config *errors.ConfigError
	switch {
	case stderrors.As(err, &validation):
		alert.WithDetails(fmt.Sprintf("invalid %s %v", validation.Field, validation.Value))
	case stderrors.As(err, &parse):
		alert.WithDetails("check the " + parse.Format + " syntax")
	case errors.IsNotFound(err):
		alert.WithDetails("run with --help to see accepted values")
	case errors.IsValidationError(err):
		alert.WithDetails("check the input values")
	case stderrors.As(err, &config):
		alert.WithDetails("config files are read from $HOME/.richtext.yaml or ./.richtext.yaml")
	}
	return alert
}
