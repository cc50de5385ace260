package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/richtext/pkg/component"
	"github.com/agentstation/richtext/pkg/errors"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		namespace string
		value     string
	}{
		{"bare value gets default namespace", "stone", "minecraft", "stone"},
		{"explicit namespace", "richtext:fonts/uniform", "richtext", "fonts/uniform"},
		{"empty namespace", ":stone", "minecraft", "stone"},
		{"dots and dashes", "my-mod.v2:a_b.c-d", "my-mod.v2", "a_b.c-d"},
		{"empty value", "minecraft:", "minecraft", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := component.ParseKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.namespace, k.Namespace())
			assert.Equal(t, tt.value, k.Value())
			assert.Equal(t, tt.namespace+":"+tt.value, k.String())
		})
	}
}

func TestParseKeyRejectsBadCharacters(t *testing.T) {
	tests := []struct {
		input string
		field string
	}{
		{"Minecraft:stone", "namespace"},
		{"mod/sub:stone", "namespace"},
		{"minecraft:Stone", "value"},
		{"minecraft:a b", "value"},
		{"minecraft:a:b", "value"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := component.ParseKey(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestMustKey(t *testing.T) {
	assert.Equal(t, "minecraft:uniform", component.MustKey("uniform").String())
	assert.Panics(t, func() { component.MustKey("BAD") })
}

func TestKeyZeroValue(t *testing.T) {
	var k component.Key
	assert.True(t, k.IsZero())
	assert.Equal(t, "", k.String())
}
