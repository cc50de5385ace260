package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agentstation/richtext/internal/cmd/output"
)

// Writer writes alerts in one of the output formats.
type Writer struct {
	w        io.Writer
	format   output.Format
	useColor bool
}

// NewWriter creates a Writer. Color is used only for text and table output
// to a terminal, and never when noColor is set.
func NewWriter(w io.Writer, format output.Format, noColor bool) *Writer {
	return &Writer{
		w:        w,
		format:   format,
		useColor: !noColor && isTerminal(w),
	}
}

type alertData struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Write writes a single alert.
func (fw *Writer) Write(alert *Alert) error {
	switch fw.format {
	case output.FormatJSON, output.FormatYAML:
		data := alertData{
			Level:   alert.Level.String(),
			Message: alert.Message,
			Details: alert.Details,
		}
		if alert.Err != nil {
			data.Error = alert.Err.Error()
		}
		return output.NewFormatter(fw.format).Format(fw.w, data)
	default:
		return fw.writePlain(alert)
	}
}

func (fw *Writer) writePlain(alert *Alert) error {
	message := alert.String()
	if fw.useColor {
		message = alert.Level.Color() + message + resetColor
	}
	if _, err := fmt.Fprintln(fw.w, message); err != nil {
		return err
	}
	for _, detail := range alert.Details {
		if _, err := fmt.Fprintf(fw.w, "  %s\n", detail); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
