// Package component is the rich-text object model: an immutable tree of
// styled components, the builders that produce them, and the style, key,
// color and position values they carry.
//
// Components never change after Build. Append returns a new component and
// leaves the receiver untouched, so a component can be shared freely.
// Builders are plain mutable accumulators and are not safe for concurrent use.
//
// Appending the empty component (see Empty and IsEmpty) to a builder or a
// component is a no-op.
package component

import "slices"

// Like is anything that can be converted to a Component.
type Like interface {
	AsComponent() Component
}

// Kind identifies the concrete type of a component.
type Kind string

// Component kinds.
const (
	KindText         Kind = "text"
	KindTranslatable Kind = "translatable"
	KindKeybind      Kind = "keybind"
	KindScore        Kind = "score"
	KindSelector     Kind = "selector"
	KindBlockNBT     Kind = "block_nbt"
	KindEntityNBT    Kind = "entity_nbt"
	KindStorageNBT   Kind = "storage_nbt"
)

// Component is an immutable node in a rich-text tree.
type Component interface {
	Like

	// Kind returns the concrete kind of the component.
	Kind() Kind

	// Children returns a copy of the ordered child list.
	Children() []Component

	// Style returns the component's own style.
	Style() Style

	// Append returns a new component with children added after the existing ones.
	Append(children ...Like) Component

	// ToBuilder returns a builder seeded with this component's state.
	ToBuilder() Builder
}

// AsComponent converts l, treating nil as the empty component.
func AsComponent(l Like) Component {
	if l == nil {
		return Empty()
	}
	if c := l.AsComponent(); c != nil {
		return c
	}
	return Empty()
}

var (
	emptyText   = &TextComponent{}
	newlineText = &TextComponent{content: "\n"}
	spaceText   = &TextComponent{content: " "}
)

// Empty returns the empty text component.
func Empty() Component { return emptyText }

// Newline returns a text component holding "\n".
func Newline() Component { return newlineText }

// Space returns a text component holding " ".
func Space() Component { return spaceText }

// IsEmpty reports whether c is a text component with no content, no
// children and no style.
func IsEmpty(c Component) bool {
	t, ok := c.(*TextComponent)
	return ok && t.content == "" && len(t.children) == 0 && t.style.IsEmpty()
}

type base struct {
	children []Component
	style    Style
}

func (c *base) Children() []Component { return slices.Clone(c.children) }

func (c *base) Style() Style { return c.style }

func appendChildren(c Component, children []Like) Component {
	b := c.ToBuilder()
	before := len(b.Children())
	b.Append(children...)
	if len(b.Children()) == before {
		return c
	}
	return b.Build()
}

// TextComponent displays literal text.
type TextComponent struct {
	base
	content string
}

// Content returns the literal text.
func (c *TextComponent) Content() string { return c.content }

func (c *TextComponent) AsComponent() Component { return c }

func (c *TextComponent) Kind() Kind { return KindText }

func (c *TextComponent) Append(children ...Like) Component { return appendChildren(c, children) }

func (c *TextComponent) ToBuilder() Builder {
	b := NewTextBuilder()
	b.seed(c.base)
	b.content = c.content
	return b
}

// TranslatableComponent displays a client-side translation with arguments.
type TranslatableComponent struct {
	base
	key      string
	args     []Component
	fallback string
}

// Key returns the translation key.
func (c *TranslatableComponent) Key() string { return c.key }

// Args returns a copy of the translation arguments.
func (c *TranslatableComponent) Args() []Component { return slices.Clone(c.args) }

// Fallback returns the text shown when the key is unknown.
func (c *TranslatableComponent) Fallback() string { return c.fallback }

func (c *TranslatableComponent) AsComponent() Component { return c }

func (c *TranslatableComponent) Kind() Kind { return KindTranslatable }

func (c *TranslatableComponent) Append(children ...Like) Component {
	return appendChildren(c, children)
}

func (c *TranslatableComponent) ToBuilder() Builder {
	b := NewTranslatableBuilder()
	b.seed(c.base)
	b.key = c.key
	b.args = slices.Clone(c.args)
	b.fallback = c.fallback
	return b
}

// KeybindComponent displays the key bound to an action.
type KeybindComponent struct {
	base
	keybind string
}

// Keybind returns the keybind identifier, e.g. "key.jump".
func (c *KeybindComponent) Keybind() string { return c.keybind }

func (c *KeybindComponent) AsComponent() Component { return c }

func (c *KeybindComponent) Kind() Kind { return KindKeybind }

func (c *KeybindComponent) Append(children ...Like) Component { return appendChildren(c, children) }

func (c *KeybindComponent) ToBuilder() Builder {
	b := NewKeybindBuilder()
	b.seed(c.base)
	b.keybind = c.keybind
	return b
}

// ScoreComponent displays a scoreboard value.
type ScoreComponent struct {
	base
	name      string
	objective string
}

// Name returns the score holder.
func (c *ScoreComponent) Name() string { return c.name }

// Objective returns the scoreboard objective.
func (c *ScoreComponent) Objective() string { return c.objective }

func (c *ScoreComponent) AsComponent() Component { return c }

func (c *ScoreComponent) Kind() Kind { return KindScore }

func (c *ScoreComponent) Append(children ...Like) Component { return appendChildren(c, children) }

func (c *ScoreComponent) ToBuilder() Builder {
	b := NewScoreBuilder()
	b.seed(c.base)
	b.name = c.name
	b.objective = c.objective
	return b
}

// SelectorComponent displays the names of entities matched by a selector.
type SelectorComponent struct {
	base
	pattern   string
	separator Component
}

// Pattern returns the selector pattern, e.g. "@p".
func (c *SelectorComponent) Pattern() string { return c.pattern }

// Separator returns the separator between matched names, or nil for the default.
func (c *SelectorComponent) Separator() Component { return c.separator }

func (c *SelectorComponent) AsComponent() Component { return c }

func (c *SelectorComponent) Kind() Kind { return KindSelector }

func (c *SelectorComponent) Append(children ...Like) Component { return appendChildren(c, children) }

func (c *SelectorComponent) ToBuilder() Builder {
	b := NewSelectorBuilder()
	b.seed(c.base)
	b.pattern = c.pattern
	b.separator = c.separator
	return b
}

type nbtBase struct {
	base
	path      string
	interpret bool
	separator Component
}

// NBTPath returns the NBT path expression.
func (c *nbtBase) NBTPath() string { return c.path }

// Interpret reports whether the NBT value is parsed as a component.
func (c *nbtBase) Interpret() bool { return c.interpret }

// Separator returns the separator between matched values, or nil.
func (c *nbtBase) Separator() Component { return c.separator }

// BlockNBTComponent displays NBT data from a block entity.
type BlockNBTComponent struct {
	nbtBase
	pos BlockPos
}

// Pos returns the block position.
func (c *BlockNBTComponent) Pos() BlockPos { return c.pos }

func (c *BlockNBTComponent) AsComponent() Component { return c }

func (c *BlockNBTComponent) Kind() Kind { return KindBlockNBT }

func (c *BlockNBTComponent) Append(children ...Like) Component { return appendChildren(c, children) }

func (c *BlockNBTComponent) ToBuilder() Builder {
	b := NewBlockNBTBuilder()
	b.seedNBT(c.nbtBase)
	b.pos = c.pos
	return b
}

// EntityNBTComponent displays NBT data from entities matched by a selector.
type EntityNBTComponent struct {
	nbtBase
	selector string
}

// Selector returns the entity selector.
func (c *EntityNBTComponent) Selector() string { return c.selector }

func (c *EntityNBTComponent) AsComponent() Component { return c }

func (c *EntityNBTComponent) Kind() Kind { return KindEntityNBT }

func (c *EntityNBTComponent) Append(children ...Like) Component { return appendChildren(c, children) }

func (c *EntityNBTComponent) ToBuilder() Builder {
	b := NewEntityNBTBuilder()
	b.seedNBT(c.nbtBase)
	b.selector = c.selector
	return b
}

// StorageNBTComponent displays NBT data from command storage.
type StorageNBTComponent struct {
	nbtBase
	storage Key
}

// Storage returns the storage key.
func (c *StorageNBTComponent) Storage() Key { return c.storage }

func (c *StorageNBTComponent) AsComponent() Component { return c }

func (c *StorageNBTComponent) Kind() Kind { return KindStorageNBT }

func (c *StorageNBTComponent) Append(children ...Like) Component {
	return appendChildren(c, children)
}

func (c *StorageNBTComponent) ToBuilder() Builder {
	b := NewStorageNBTBuilder()
	b.seedNBT(c.nbtBase)
	b.storage = c.storage
	return b
}
