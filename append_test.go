package richtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/richtext"
	"github.com/agentstation/richtext/pkg/component"
)

func TestAppend(t *testing.T) {
	hello := richtext.Text("hello")
	got := richtext.Append(hello, richtext.Text(" "), richtext.Text("world"))

	assert.Equal(t, "hello world", component.PlainText(got))
	assert.Equal(t, "hello", component.PlainText(hello))
}

func TestAppendNilReceiver(t *testing.T) {
	got := richtext.Append(nil, richtext.Text("x"))
	assert.Equal(t, "x", component.PlainText(got))
}

func TestAppendTo(t *testing.T) {
	b := component.NewTextBuilder()
	got := richtext.AppendTo(b, richtext.Text("a"), component.Empty(), richtext.Text("b"))

	require.Same(t, b, got)
	assert.Len(t, b.Children(), 2)
	assert.Equal(t, "ab", component.PlainText(b.Build()))
}

func TestAsComponent(t *testing.T) {
	c := richtext.Text("x")
	assert.Same(t, c, richtext.AsComponent(c))
	assert.True(t, component.IsEmpty(richtext.AsComponent(nil)))

	all := richtext.AsComponents(playerLike{"Alex"}, playerLike{"Steve"})
	require.Len(t, all, 2)
	assert.Equal(t, "Steve", component.PlainText(all[1]))
}
