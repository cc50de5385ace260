package component_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/richtext/pkg/component"
)

func text(content string, styles ...component.StyleApplicable) component.Component {
	b := component.NewTextBuilder()
	b.Content(content)
	b.ApplyStyle(styles...)
	return b.Build()
}

func TestTextBuilder(t *testing.T) {
	b := component.NewTextBuilder()
	b.Content("hello")
	b.ApplyStyle(component.Gold, component.Bold)
	b.Append(text(" "), text("world"))

	c := b.Build()
	require.Equal(t, component.KindText, c.Kind())
	assert.Equal(t, "hello", c.(*component.TextComponent).Content())
	assert.Len(t, c.Children(), 2)
	assert.Equal(t, "hello world", component.PlainText(c))
	assert.True(t, c.Style().HasDecoration(component.Bold))
}

func TestBuilderSkipsEmptyAndNil(t *testing.T) {
	b := component.NewTextBuilder()
	b.Append(component.Empty(), nil, text(""), text("x"))
	assert.Len(t, b.Children(), 1)

	// styled empty text is not the empty component
	b.Append(text("", component.Red))
	assert.Len(t, b.Children(), 2)
}

func TestEmptyBuildIsEmpty(t *testing.T) {
	c := component.NewTextBuilder().Build()
	assert.True(t, component.IsEmpty(c))
	assert.Same(t, component.Empty(), c)
	assert.False(t, component.IsEmpty(component.Newline()))
	assert.Equal(t, " ", component.PlainText(component.Space()))
}

func TestAppendIsImmutable(t *testing.T) {
	parent := text("a")
	child := text("b")

	appended := parent.Append(child)

	assert.Empty(t, parent.Children())
	assert.Len(t, appended.Children(), 1)
	assert.Equal(t, "ab", component.PlainText(appended))
	assert.Equal(t, "a", component.PlainText(parent))
}

func TestAppendEmptyReturnsReceiver(t *testing.T) {
	parent := text("a")
	assert.Same(t, parent, parent.Append(component.Empty(), nil))
}

func TestChildrenReturnsCopy(t *testing.T) {
	c := text("a").Append(text("b"))
	children := c.Children()
	children[0] = text("z")
	assert.Equal(t, "ab", component.PlainText(c))
}

func TestBuilderStaysUsableAfterBuild(t *testing.T) {
	b := component.NewTextBuilder()
	b.Content("x")
	first := b.Build()
	b.Append(text("y"))
	second := b.Build()

	assert.Equal(t, "x", component.PlainText(first))
	assert.Equal(t, "xy", component.PlainText(second))
}

func TestAsComponent(t *testing.T) {
	assert.Same(t, component.Empty(), component.AsComponent(nil))
	c := text("x")
	assert.Same(t, c, component.AsComponent(c))
}

func TestComponentKinds(t *testing.T) {
	tr := component.NewTranslatableBuilder()
	tr.Key("chat.type.text")
	tr.Args(text("Steve"), text("hi"))
	tr.Fallback("<Steve> hi")

	kb := component.NewKeybindBuilder()
	kb.Keybind("key.jump")

	sc := component.NewScoreBuilder()
	sc.Name("@s")
	sc.Objective("kills")

	se := component.NewSelectorBuilder()
	se.Pattern("@a")
	se.Separator(text(" | "))

	bn := component.NewBlockNBTBuilder()
	bn.NBTPath("Items[0]")
	bn.WorldPos(component.Relative(1), component.Absolute(64), component.Relative(-2))
	bn.Interpret(true)

	en := component.NewEntityNBTBuilder()
	en.NBTPath("Health")
	en.Selector("@p")

	st := component.NewStorageNBTBuilder()
	st.NBTPath("data.msg")
	st.Storage(component.MustKey("richtext:store"))

	tests := []struct {
		name  string
		c     component.Component
		kind  component.Kind
		plain string
	}{
		{"translatable", tr.Build(), component.KindTranslatable, "<Steve> hi"},
		{"keybind", kb.Build(), component.KindKeybind, "key.jump"},
		{"score", sc.Build(), component.KindScore, "@s"},
		{"selector", se.Build(), component.KindSelector, "@a"},
		{"block nbt", bn.Build(), component.KindBlockNBT, "Items[0]"},
		{"entity nbt", en.Build(), component.KindEntityNBT, "Health"},
		{"storage nbt", st.Build(), component.KindStorageNBT, "data.msg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.c.Kind())
			assert.Equal(t, tt.plain, component.PlainText(tt.c))

			// ToBuilder round-trips every attribute
			rebuilt := tt.c.ToBuilder().Build()
			if diff := cmp.Diff(component.Describe(tt.c), component.Describe(rebuilt)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}

			appended := tt.c.Append(text("!"))
			assert.Equal(t, tt.kind, appended.Kind())
			assert.Equal(t, tt.plain+"!", component.PlainText(appended))
		})
	}

	assert.Equal(t, "~1 64 ~-2", bn.Build().(*component.BlockNBTComponent).Pos().String())
	assert.Equal(t, "richtext:store", st.Build().(*component.StorageNBTComponent).Storage().String())
	assert.True(t, bn.Build().(*component.BlockNBTComponent).Interpret())
}

func TestTranslatableArgsAreCopied(t *testing.T) {
	b := component.NewTranslatableBuilder()
	b.Key("k")
	b.Args(text("a"))
	first := b.Build().(*component.TranslatableComponent)
	b.Args(text("b"), nil)
	second := b.Build().(*component.TranslatableComponent)

	require.Len(t, first.Args(), 1)
	assert.Equal(t, "a", component.PlainText(first.Args()[0]))
	require.Len(t, second.Args(), 2)
	assert.True(t, component.IsEmpty(second.Args()[1]))
}

func TestTranslatablePlainTextFallsBackToKey(t *testing.T) {
	b := component.NewTranslatableBuilder()
	b.Key("block.minecraft.stone")
	assert.Equal(t, "block.minecraft.stone", component.PlainText(b.Build()))
}

func TestDescribe(t *testing.T) {
	c := text("hi", component.Gold, component.Bold, component.Italic.As(component.False)).
		Append(text("!"))

	want := component.Node{
		Kind:    component.KindText,
		Content: "hi",
		Style: &component.StyleNode{
			Color:       "gold",
			Decorations: map[string]bool{"bold": true, "italic": false},
		},
		Children: []component.Node{{Kind: component.KindText, Content: "!"}},
	}

	if diff := cmp.Diff(want, component.Describe(c)); diff != "" {
		t.Errorf("Describe mismatch (-want +got):\n%s", diff)
	}
}
