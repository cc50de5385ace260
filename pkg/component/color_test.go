package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/richtext/pkg/component"
	"github.com/agentstation/richtext/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  component.TextColor
		str   string
	}{
		{"gold", component.Gold, "gold"},
		{"DARK_AQUA", component.DarkAqua, "dark_aqua"},
		{"#FFAA00", component.Gold, "gold"},
		{"#123abc", component.RGB(0x123ABC), "#123abc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := component.ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.str, got.String())
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	t.Run("unknown name", func(t *testing.T) {
		_, err := component.ParseColor("mauve")
		assert.True(t, errors.IsNotFound(err))
	})

	for _, input := range []string{"", "#fff", "#gggggg", "#1234567"} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := component.ParseColor(input)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRGBDropsHighBits(t *testing.T) {
	c := component.RGB(0xFF123456)
	assert.Equal(t, uint32(0x123456), c.Value())
	assert.Equal(t, "#123456", c.Hex())
	_, named := c.Name()
	assert.False(t, named)
}
