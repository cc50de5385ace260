package richtext

import "github.com/agentstation/richtext/pkg/component"

// Append returns c with children added, leaving c untouched.
func Append(c component.Like, children ...component.Like) component.Component {
	return component.AsComponent(c).Append(children...)
}

// AppendTo appends children to b and returns b for further use.
func AppendTo(b component.Builder, children ...component.Like) component.Builder {
	b.Append(children...)
	return b
}

// AsComponent converts l to a component; nil becomes the empty component.
func AsComponent(l component.Like) component.Component {
	return component.AsComponent(l)
}

// AsComponents converts each item in order.
func AsComponents[T component.Like](items ...T) []component.Component {
	out := make([]component.Component, len(items))
	for i, item := range items {
		out[i] = component.AsComponent(item)
	}
	return out
}
