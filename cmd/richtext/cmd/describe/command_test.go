package describe

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/richtext/internal/cmd/application"
	"github.com/agentstation/richtext/pkg/errors"
)

const doc = `separator: " / "
prefix: "<"
suffix: ">"
limit: 2
items:
  - text: one
  - keybind: key.sneak
  - selector: "@a"
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(&application.Mock{OutputFormatFunc: func() string { return format }})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDescribeCommand(t *testing.T) {
	path := writeDoc(t, doc)

	got, err := execute(t, "text", path)
	require.NoError(t, err)
	assert.Equal(t, "<one / key.sneak...>\n", got)

	got, err = execute(t, "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, got, "kind: keybind")
	assert.NotContains(t, got, "selector")

	got, err = execute(t, "table", path)
	require.NoError(t, err)
	assert.Contains(t, got, "key.sneak")
}

func TestDescribeCommand_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "text", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		var ioErr *errors.IOError
		assert.ErrorAs(t, err, &ioErr)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := execute(t, "text", writeDoc(t, "colour: red\nitems: []\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("no argument", func(t *testing.T) {
		_, err := execute(t, "text")
		assert.Error(t, err)
	})
}
