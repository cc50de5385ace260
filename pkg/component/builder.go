package component

import "slices"

// Builder is a mutable accumulator that produces a Component.
type Builder interface {
	// Append adds children in order. Nil and empty components are skipped.
	Append(children ...Like)

	// ApplyStyle applies style values on top of the current style.
	ApplyStyle(styles ...StyleApplicable)

	// SetStyle replaces the current style.
	SetStyle(style Style)

	// Children returns a copy of the children appended so far.
	Children() []Component

	// Build returns an immutable component; the builder stays usable.
	Build() Component
}

type builderBase struct {
	children []Component
	style    StyleBuilder
}

func (b *builderBase) seed(c base) {
	b.children = slices.Clone(c.children)
	b.style = StyleBuilder{style: c.style}
}

// Append adds children in order, skipping nil and empty components.
func (b *builderBase) Append(children ...Like) {
	for _, child := range children {
		if child == nil {
			continue
		}
		c := child.AsComponent()
		if c == nil || IsEmpty(c) {
			continue
		}
		b.children = append(b.children, c)
	}
}

// ApplyStyle applies style values on top of the current style.
func (b *builderBase) ApplyStyle(styles ...StyleApplicable) {
	b.style.Apply(styles...)
}

// SetStyle replaces the current style.
func (b *builderBase) SetStyle(style Style) {
	b.style = StyleBuilder{style: style}
}

// StyleBuilder exposes the style being built for in-place edits.
func (b *builderBase) StyleBuilder() *StyleBuilder {
	return &b.style
}

// Children returns a copy of the children appended so far.
func (b *builderBase) Children() []Component {
	return slices.Clone(b.children)
}

func (b *builderBase) snapshot() base {
	return base{children: slices.Clone(b.children), style: b.style.Build()}
}

// TextBuilder builds text components.
type TextBuilder struct {
	builderBase
	content string
}

// NewTextBuilder returns an empty text builder.
func NewTextBuilder() *TextBuilder { return &TextBuilder{} }

// Content sets the literal text.
func (b *TextBuilder) Content(content string) { b.content = content }

// Build returns the text component.
func (b *TextBuilder) Build() Component {
	c := &TextComponent{base: b.snapshot(), content: b.content}
	if IsEmpty(c) {
		return Empty()
	}
	return c
}

// TranslatableBuilder builds translatable components.
type TranslatableBuilder struct {
	builderBase
	key      string
	args     []Component
	fallback string
}

// NewTranslatableBuilder returns an empty translatable builder.
func NewTranslatableBuilder() *TranslatableBuilder { return &TranslatableBuilder{} }

// Key sets the translation key.
func (b *TranslatableBuilder) Key(key string) { b.key = key }

// Args replaces the translation arguments.
func (b *TranslatableBuilder) Args(args ...Like) {
	b.args = b.args[:0]
	for _, a := range args {
		b.args = append(b.args, AsComponent(a))
	}
}

// Fallback sets the text shown when the key is unknown.
func (b *TranslatableBuilder) Fallback(fallback string) { b.fallback = fallback }

// Build returns the translatable component.
func (b *TranslatableBuilder) Build() Component {
	return &TranslatableComponent{
		base:     b.snapshot(),
		key:      b.key,
		args:     slices.Clone(b.args),
		fallback: b.fallback,
	}
}

// KeybindBuilder builds keybind components.
type KeybindBuilder struct {
	builderBase
	keybind string
}

// NewKeybindBuilder returns an empty keybind builder.
func NewKeybindBuilder() *KeybindBuilder { return &KeybindBuilder{} }

// Keybind sets the keybind identifier.
func (b *KeybindBuilder) Keybind(keybind string) { b.keybind = keybind }

// Build returns the keybind component.
func (b *KeybindBuilder) Build() Component {
	return &KeybindComponent{base: b.snapshot(), keybind: b.keybind}
}

// ScoreBuilder builds score components.
type ScoreBuilder struct {
	builderBase
	name      string
	objective string
}

// NewScoreBuilder returns an empty score builder.
func NewScoreBuilder() *ScoreBuilder { return &ScoreBuilder{} }

// Name sets the score holder.
func (b *ScoreBuilder) Name(name string) { b.name = name }

// Objective sets the scoreboard objective.
func (b *ScoreBuilder) Objective(objective string) { b.objective = objective }

// Build returns the score component.
func (b *ScoreBuilder) Build() Component {
	return &ScoreComponent{base: b.snapshot(), name: b.name, objective: b.objective}
}

// SelectorBuilder builds selector components.
type SelectorBuilder struct {
	builderBase
	pattern   string
	separator Component
}

// NewSelectorBuilder returns an empty selector builder.
func NewSelectorBuilder() *SelectorBuilder { return &SelectorBuilder{} }

// Pattern sets the selector pattern.
func (b *SelectorBuilder) Pattern(pattern string) { b.pattern = pattern }

// Separator sets the separator between matched names; nil restores the default.
func (b *SelectorBuilder) Separator(separator Like) {
	b.separator = nil
	if separator != nil {
		b.separator = separator.AsComponent()
	}
}

// Build returns the selector component.
func (b *SelectorBuilder) Build() Component {
	return &SelectorComponent{base: b.snapshot(), pattern: b.pattern, separator: b.separator}
}

type nbtBuilderBase struct {
	builderBase
	path      string
	interpret bool
	separator Component
}

func (b *nbtBuilderBase) seedNBT(c nbtBase) {
	b.seed(c.base)
	b.path = c.path
	b.interpret = c.interpret
	b.separator = c.separator
}

func (b *nbtBuilderBase) nbtSnapshot() nbtBase {
	return nbtBase{base: b.snapshot(), path: b.path, interpret: b.interpret, separator: b.separator}
}

// NBTPath sets the NBT path expression.
func (b *nbtBuilderBase) NBTPath(path string) { b.path = path }

// Interpret sets whether the NBT value is parsed as a component.
func (b *nbtBuilderBase) Interpret(interpret bool) { b.interpret = interpret }

// Separator sets the separator between matched values; nil restores the default.
func (b *nbtBuilderBase) Separator(separator Like) {
	b.separator = nil
	if separator != nil {
		b.separator = separator.AsComponent()
	}
}

// BlockNBTBuilder builds block NBT components.
type BlockNBTBuilder struct {
	nbtBuilderBase
	pos BlockPos
}

// NewBlockNBTBuilder returns an empty block NBT builder.
func NewBlockNBTBuilder() *BlockNBTBuilder { return &BlockNBTBuilder{} }

// Pos sets the block position.
func (b *BlockNBTBuilder) Pos(pos BlockPos) { b.pos = pos }

// LocalPos sets a caret-notation position.
func (b *BlockNBTBuilder) LocalPos(left, up, forwards float64) {
	b.pos = LocalPos{Left: left, Up: up, Forwards: forwards}
}

// WorldPos sets a world position.
func (b *BlockNBTBuilder) WorldPos(x, y, z Coordinate) {
	b.pos = WorldPos{X: x, Y: y, Z: z}
}

// Build returns the block NBT component.
func (b *BlockNBTBuilder) Build() Component {
	return &BlockNBTComponent{nbtBase: b.nbtSnapshot(), pos: b.pos}
}

// EntityNBTBuilder builds entity NBT components.
type EntityNBTBuilder struct {
	nbtBuilderBase
	selector string
}

// NewEntityNBTBuilder returns an empty entity NBT builder.
func NewEntityNBTBuilder() *EntityNBTBuilder { return &EntityNBTBuilder{} }

// Selector sets the entity selector.
func (b *EntityNBTBuilder) Selector(selector string) { b.selector = selector }

// Build returns the entity NBT component.
func (b *EntityNBTBuilder) Build() Component {
	return &EntityNBTComponent{nbtBase: b.nbtSnapshot(), selector: b.selector}
}

// StorageNBTBuilder builds storage NBT components.
type StorageNBTBuilder struct {
	nbtBuilderBase
	storage Key
}

// NewStorageNBTBuilder returns an empty storage NBT builder.
func NewStorageNBTBuilder() *StorageNBTBuilder { return &StorageNBTBuilder{} }

// Storage sets the storage key.
func (b *StorageNBTBuilder) Storage(storage Key) { b.storage = storage }

// Build returns the storage NBT component.
func (b *StorageNBTBuilder) Build() Component {
	return &StorageNBTComponent{nbtBase: b.nbtSnapshot(), storage: b.storage}
}

// compile-time checks
var (
	_ Builder = (*TextBuilder)(nil)
	_ Builder = (*TranslatableBuilder)(nil)
	_ Builder = (*KeybindBuilder)(nil)
	_ Builder = (*ScoreBuilder)(nil)
	_ Builder = (*SelectorBuilder)(nil)
	_ Builder = (*BlockNBTBuilder)(nil)
	_ Builder = (*EntityNBTBuilder)(nil)
	_ Builder = (*StorageNBTBuilder)(nil)
)
