package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/richtext/pkg/component"
)

func TestNewStyle(t *testing.T) {
	font := component.MustKey("uniform")
	tip := component.NewTextBuilder()
	tip.Content("tip")
	s := component.NewStyle(
		component.Red,
		component.Bold,
		component.Italic.As(component.False),
		component.Font(font),
		component.Insertion("hello"),
		component.RunCommand("/spawn"),
		component.ShowText(tip.Build()),
	)

	c, ok := s.Color()
	assert.True(t, ok)
	assert.Equal(t, component.Red, c)
	assert.True(t, s.HasDecoration(component.Bold))
	assert.Equal(t, component.False, s.Decoration(component.Italic))
	assert.Equal(t, component.NotSet, s.Decoration(component.Underlined))
	f, ok := s.Font()
	assert.True(t, ok)
	assert.Equal(t, font, f)
	assert.Equal(t, "hello", s.Insertion())
	assert.Equal(t, component.RunCommandAction, s.ClickEvent().Action)
	if assert.NotNil(t, s.HoverEvent()) {
		assert.Equal(t, "tip", component.PlainText(s.HoverEvent().Text()))
	}
	assert.False(t, s.IsEmpty())
}

func TestStyleLaterValuesWin(t *testing.T) {
	s := component.NewStyle(component.Red, component.Blue, nil)
	c, _ := s.Color()
	assert.Equal(t, component.Blue, c)
}

func TestStyleMerge(t *testing.T) {
	base := component.NewStyle(component.Red, component.Bold)
	over := component.NewStyle(component.Bold.As(component.False), component.Insertion("x"))

	merged := base.Merge(over)

	c, _ := merged.Color()
	assert.Equal(t, component.Red, c)
	assert.Equal(t, component.False, merged.Decoration(component.Bold))
	assert.Equal(t, "x", merged.Insertion())

	// receiver untouched
	assert.True(t, base.HasDecoration(component.Bold))
	assert.Equal(t, "", base.Insertion())
}

func TestStyleZeroValue(t *testing.T) {
	var s component.Style
	assert.True(t, s.IsEmpty())
	_, ok := s.Color()
	assert.False(t, ok)
	assert.Nil(t, s.ClickEvent())
	assert.Equal(t, component.NotSet, s.Decoration(component.Decoration(42)))
}

func TestDecorationNames(t *testing.T) {
	for _, d := range component.Decorations() {
		parsed, ok := component.ParseDecoration(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}
	_, ok := component.ParseDecoration("blink")
	assert.False(t, ok)
	assert.Equal(t, "decoration(9)", component.Decoration(9).String())
}

func TestClickEvents(t *testing.T) {
	assert.Equal(t, component.ClickEvent{Action: component.ChangePageAction, Value: "3"}, component.ChangePage(3))
	assert.Equal(t, component.OpenURLAction, component.OpenURL("https://example.com").Action)
	assert.Equal(t, component.SuggestCommandAction, component.SuggestCommand("/msg").Action)
	assert.Equal(t, component.CopyToClipboardAction, component.CopyToClipboard("x").Action)
}
