package richtext

import "github.com/agentstation/richtext/pkg/component"

// Text creates a text component with the given styles.
func Text(content string, styles ...component.StyleApplicable) component.Component {
	return TextWith(func(b *component.TextBuilder) {
		b.Content(content)
		b.ApplyStyle(styles...)
	})
}

// TextWith creates a text component configured by fn.
func TextWith(fn func(b *component.TextBuilder)) component.Component {
	b := component.NewTextBuilder()
	configure(b, fn)
	return b.Build()
}

// Translatable creates a translatable component with arguments.
func Translatable(key string, args ...component.Like) component.Component {
	return TranslatableWith(key, func(b *component.TranslatableBuilder) {
		b.Args(args...)
	})
}

// TranslatableWith creates a translatable component configured by fn.
func TranslatableWith(key string, fn func(b *component.TranslatableBuilder)) component.Component {
	b := component.NewTranslatableBuilder()
	b.Key(key)
	configure(b, fn)
	return b.Build()
}

// Keybind creates a keybind component.
func Keybind(keybind string, styles ...component.StyleApplicable) component.Component {
	return KeybindWith(keybind, func(b *component.KeybindBuilder) {
		b.ApplyStyle(styles...)
	})
}

// KeybindWith creates a keybind component configured by fn.
func KeybindWith(keybind string, fn func(b *component.KeybindBuilder)) component.Component {
	b := component.NewKeybindBuilder()
	b.Keybind(keybind)
	configure(b, fn)
	return b.Build()
}

// Score creates a score component.
func Score(name, objective string, styles ...component.StyleApplicable) component.Component {
	return ScoreWith(name, objective, func(b *component.ScoreBuilder) {
		b.ApplyStyle(styles...)
	})
}

// ScoreWith creates a score component configured by fn.
func ScoreWith(name, objective string, fn func(b *component.ScoreBuilder)) component.Component {
	b := component.NewScoreBuilder()
	b.Name(name)
	b.Objective(objective)
	configure(b, fn)
	return b.Build()
}

// Selector creates a selector component.
func Selector(pattern string, styles ...component.StyleApplicable) component.Component {
	return SelectorWith(pattern, func(b *component.SelectorBuilder) {
		b.ApplyStyle(styles...)
	})
}

// SelectorWith creates a selector component configured by fn.
func SelectorWith(pattern string, fn func(b *component.SelectorBuilder)) component.Component {
	b := component.NewSelectorBuilder()
	b.Pattern(pattern)
	configure(b, fn)
	return b.Build()
}

// BlockNBT creates a block NBT component. pos uses command syntax
// ("~ ~1 ~" or "^0 ^0 ^1"); parse errors are returned as is.
func BlockNBT(path, pos string, fn func(b *component.BlockNBTBuilder)) (component.Component, error) {
	p, err := component.ParsePos(pos)
	if err != nil {
		return nil, err
	}
	b := component.NewBlockNBTBuilder()
	b.NBTPath(path)
	b.Pos(p)
	configure(b, fn)
	return b.Build(), nil
}

// EntityNBT creates an entity NBT component.
func EntityNBT(path, selector string, fn func(b *component.EntityNBTBuilder)) component.Component {
	b := component.NewEntityNBTBuilder()
	b.NBTPath(path)
	b.Selector(selector)
	configure(b, fn)
	return b.Build()
}

// StorageNBT creates a storage NBT component. Key errors are returned as is.
func StorageNBT(path, storage string, fn func(b *component.StorageNBTBuilder)) (component.Component, error) {
	k, err := component.ParseKey(storage)
	if err != nil {
		return nil, err
	}
	b := component.NewStorageNBTBuilder()
	b.NBTPath(path)
	b.Storage(k)
	configure(b, fn)
	return b.Build(), nil
}

// Style builds a style from applicable values.
func Style(styles ...component.StyleApplicable) component.Style {
	return component.NewStyle(styles...)
}

// StyleWith builds a style configured by fn.
func StyleWith(fn func(b *component.StyleBuilder)) component.Style {
	var b component.StyleBuilder
	configure(&b, fn)
	return b.Build()
}

// Key parses "namespace:value" or a bare value in the default namespace.
func Key(s string) (component.Key, error) {
	return component.ParseKey(s)
}

// KeyOf creates a key from its parts.
func KeyOf(namespace, value string) (component.Key, error) {
	return component.NewKey(namespace, value)
}

// Color parses a named or "#RRGGBB" color.
func Color(s string) (component.TextColor, error) {
	return component.ParseColor(s)
}

func configure[B any](b B, fn func(B)) {
	if fn != nil {
		fn(b)
	}
}
