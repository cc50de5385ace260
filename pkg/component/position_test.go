package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/richtext/pkg/component"
	"github.com/agentstation/richtext/pkg/errors"
)

func TestParsePos(t *testing.T) {
	tests := []struct {
		input string
		want  component.BlockPos
		str   string
	}{
		{"1 2 3", component.WorldPos{X: component.Absolute(1), Y: component.Absolute(2), Z: component.Absolute(3)}, "1 2 3"},
		{"~1 ~ ~-3", component.WorldPos{X: component.Relative(1), Y: component.Relative(0), Z: component.Relative(-3)}, "~1 ~0 ~-3"},
		{"^1 ^0.5 ^-2", component.LocalPos{Left: 1, Up: 0.5, Forwards: -2}, "^1 ^0.5 ^-2"},
		{"  4   5  6 ", component.WorldPos{X: component.Absolute(4), Y: component.Absolute(5), Z: component.Absolute(6)}, "4 5 6"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := component.ParsePos(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.str, got.String())
		})
	}
}

func TestParsePosErrors(t *testing.T) {
	for _, input := range []string{"", "1 2", "1 2 3 4", "^1 2 3", "a b c", "^a ^1 ^2", "~x 1 2", "1.5 2 3",
		"^NaN ^Inf ^1", "^1 ^-Infinity ^2", "^0x1p3 ^1 ^2", "^1e999 ^0 ^0"} {
		t.Run(input, func(t *testing.T) {
			_, err := component.ParsePos(input)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var perr *errors.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "position", perr.Format)
		})
	}
}
