package component

import "strconv"

// StyleApplicable is anything that can be applied to a style builder:
// colors, decorations, events, fonts and whole styles.
type StyleApplicable interface {
	ApplyTo(b *StyleBuilder)
}

// StyleFunc adapts a function to StyleApplicable.
type StyleFunc func(b *StyleBuilder)

// ApplyTo calls f.
func (f StyleFunc) ApplyTo(b *StyleBuilder) { f(b) }

// Decoration is a text decoration such as bold or italic.
type Decoration int

// Decorations.
const (
	Obfuscated Decoration = iota
	Bold
	Strikethrough
	Underlined
	Italic
	decorationCount
)

var decorationNames = [decorationCount]string{"obfuscated", "bold", "strikethrough", "underlined", "italic"}

// Decorations lists every decoration in a stable order.
func Decorations() []Decoration {
	return []Decoration{Obfuscated, Bold, Strikethrough, Underlined, Italic}
}

// ParseDecoration returns the decoration with the given lower-case name.
func ParseDecoration(name string) (Decoration, bool) {
	for i, n := range decorationNames {
		if n == name {
			return Decoration(i), true
		}
	}
	return 0, false
}

// String returns the decoration's lower-case name.
func (d Decoration) String() string {
	if d < 0 || d >= decorationCount {
		return "decoration(" + strconv.Itoa(int(d)) + ")"
	}
	return decorationNames[d]
}

// ApplyTo turns the decoration on.
func (d Decoration) ApplyTo(b *StyleBuilder) {
	b.Decoration(d, True)
}

// As pairs the decoration with an explicit state.
func (d Decoration) As(state DecorationState) DecorationAndState {
	return DecorationAndState{Decoration: d, State: state}
}

// DecorationState is a tri-state flag; NotSet inherits from the parent.
type DecorationState int

// Decoration states.
const (
	NotSet DecorationState = iota
	False
	True
)

// String implements fmt.Stringer.
func (s DecorationState) String() string {
	switch s {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "not_set"
	}
}

// DecorationAndState applies a decoration with a specific state.
type DecorationAndState struct {
	Decoration Decoration
	State      DecorationState
}

// ApplyTo sets the decoration state.
func (d DecorationAndState) ApplyTo(b *StyleBuilder) {
	b.Decoration(d.Decoration, d.State)
}

// Font sets the font key.
func Font(key Key) StyleApplicable {
	return StyleFunc(func(b *StyleBuilder) { b.Font(key) })
}

// Insertion sets the shift-click insertion text.
func Insertion(text string) StyleApplicable {
	return StyleFunc(func(b *StyleBuilder) { b.Insertion(text) })
}

// Style is an immutable set of formatting attributes. The zero value is the
// empty style.
type Style struct {
	color       *TextColor
	decorations [decorationCount]DecorationState
	font        *Key
	insertion   string
	click       *ClickEvent
	hover       *HoverEvent
}

// NewStyle builds a style from applicable values.
func NewStyle(styles ...StyleApplicable) Style {
	var b StyleBuilder
	b.Apply(styles...)
	return b.Build()
}

// Color returns the style's color.
func (s Style) Color() (TextColor, bool) {
	if s.color == nil {
		return TextColor{}, false
	}
	return *s.color, true
}

// Decoration returns the state of one decoration.
func (s Style) Decoration(d Decoration) DecorationState {
	if d < 0 || d >= decorationCount {
		return NotSet
	}
	return s.decorations[d]
}

// HasDecoration reports whether d is explicitly on.
func (s Style) HasDecoration(d Decoration) bool {
	return s.Decoration(d) == True
}

// Font returns the font key.
func (s Style) Font() (Key, bool) {
	if s.font == nil {
		return Key{}, false
	}
	return *s.font, true
}

// Insertion returns the insertion text.
func (s Style) Insertion() string { return s.insertion }

// ClickEvent returns the click event or nil.
func (s Style) ClickEvent() *ClickEvent { return s.click }

// HoverEvent returns the hover event or nil.
func (s Style) HoverEvent() *HoverEvent { return s.hover }

// IsEmpty reports whether no attribute is set.
func (s Style) IsEmpty() bool {
	if s.color != nil || s.font != nil || s.insertion != "" || s.click != nil || s.hover != nil {
		return false
	}
	for _, st := range s.decorations {
		if st != NotSet {
			return false
		}
	}
	return true
}

// Merge returns s with every attribute set in other overriding it.
func (s Style) Merge(other Style) Style {
	b := s.ToBuilder()
	b.Merge(other)
	return b.Build()
}

// ToBuilder returns a builder seeded with s.
func (s Style) ToBuilder() *StyleBuilder {
	return &StyleBuilder{style: s}
}

// ApplyTo merges s into the builder.
func (s Style) ApplyTo(b *StyleBuilder) {
	b.Merge(s)
}

// StyleBuilder accumulates style attributes. The zero value is ready to use.
type StyleBuilder struct {
	style Style
}

// Color sets the color.
func (b *StyleBuilder) Color(c TextColor) {
	b.style.color = &c
}

// Decoration sets the state of one decoration.
func (b *StyleBuilder) Decoration(d Decoration, state DecorationState) {
	if d < 0 || d >= decorationCount {
		return
	}
	b.style.decorations[d] = state
}

// Decorate turns the given decorations on.
func (b *StyleBuilder) Decorate(ds ...Decoration) {
	for _, d := range ds {
		b.Decoration(d, True)
	}
}

// Font sets the font key.
func (b *StyleBuilder) Font(k Key) {
	b.style.font = &k
}

// Insertion sets the insertion text.
func (b *StyleBuilder) Insertion(text string) {
	b.style.insertion = text
}

// ClickEvent sets the click event.
func (b *StyleBuilder) ClickEvent(e ClickEvent) {
	b.style.click = &e
}

// HoverEvent sets the hover event.
func (b *StyleBuilder) HoverEvent(e HoverEvent) {
	b.style.hover = &e
}

// Merge copies every attribute set in other.
func (b *StyleBuilder) Merge(other Style) {
	if other.color != nil {
		b.style.color = other.color
	}
	for i, st := range other.decorations {
		if st != NotSet {
			b.style.decorations[i] = st
		}
	}
	if other.font != nil {
		b.style.font = other.font
	}
	if other.insertion != "" {
		b.style.insertion = other.insertion
	}
	if other.click != nil {
		b.style.click = other.click
	}
	if other.hover != nil {
		b.style.hover = other.hover
	}
}

// Apply applies each value in order; later values win.
func (b *StyleBuilder) Apply(styles ...StyleApplicable) {
	for _, s := range styles {
		if s != nil {
			s.ApplyTo(b)
		}
	}
}

// Build returns the accumulated style.
func (b *StyleBuilder) Build() Style {
	return b.style
}
