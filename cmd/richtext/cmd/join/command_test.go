package join

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/richtext"
	"github.com/agentstation/richtext/internal/cmd/application"
	"github.com/agentstation/richtext/pkg/errors"
)

func execute(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestJoinCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", []string{"alpha", "beta", "gamma"}, "alpha, beta, gamma\n"},
		{"no items", nil, "\n"},
		{"limit", []string{"a", "b", "c", "d", "--limit", "2"}, "a, b...\n"},
		{"zero limit is unlimited", []string{"a", "b", "c", "--limit", "0"}, "a, b, c\n"},
		{"custom truncated", []string{"a", "b", "c", "-l", "1", "--truncated", " and more"}, "a and more\n"},
		{"empty separator", []string{"a", "b", "c", "--separator", ""}, "abc\n"},
		{"prefix and suffix", []string{"a", "b", "--prefix", "[", "--suffix", "]"}, "[a, b]\n"},
		{"styled", []string{"a", "b", "--color", "gold", "--bold"}, "a, b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, &application.Mock{}, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinCommand_ConfigDefaults(t *testing.T) {
	app := &application.Mock{
		JoinDefaultsFunc: func() richtext.JoinOptions {
			opts := richtext.DefaultJoinOptions()
			opts.Separator = richtext.Text(" | ")
			opts.Limit = 2
			return opts
		},
	}

	got, err := execute(t, app, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a | b...\n", got)

	got, err = execute(t, app, "a", "b", "c", "--limit", "-1", "-s", "/")
	require.NoError(t, err)
	assert.Equal(t, "a/b/c\n", got)
}

func TestJoinCommand_Formats(t *testing.T) {
	json := &application.Mock{OutputFormatFunc: func() string { return "json" }}
	got, err := execute(t, json, "a", "b", "--color", "#ff0000")
	require.NoError(t, err)
	assert.Contains(t, got, `"kind": "text"`)
	assert.Contains(t, got, `"content": "a"`)
	assert.Contains(t, got, `"color": "#ff0000"`)

	table := &application.Mock{OutputFormatFunc: func() string { return "table" }}
	got, err = execute(t, table, "a", "b")
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(got), "PATH")
	assert.Contains(t, got, `"a"`)

	bad := &application.Mock{OutputFormatFunc: func() string { return "xml" }}
	_, err = execute(t, bad, "a")
	assert.Error(t, err)
}

func TestJoinCommand_InvalidColor(t *testing.T) {
	_, err := execute(t, &application.Mock{}, "a", "--color", "#zzzzzz")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	_, err = execute(t, &application.Mock{}, "a", "--color", "mauve")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
