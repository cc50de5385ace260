package component

import "strings"

// PlainText flattens a component tree to its text, ignoring style.
// Text contributes its content, translatables their fallback or key,
// keybinds their identifier, scores their holder, selectors their pattern
// and NBT components their path, each followed by its children.
func PlainText(c Like) string {
	var sb strings.Builder
	writePlain(&sb, AsComponent(c))
	return sb.String()
}

func writePlain(sb *strings.Builder, c Component) {
	switch v := c.(type) {
	case *TextComponent:
		sb.WriteString(v.content)
	case *TranslatableComponent:
		if v.fallback != "" {
			sb.WriteString(v.fallback)
		} else {
			sb.WriteString(v.key)
		}
	case *KeybindComponent:
		sb.WriteString(v.keybind)
	case *ScoreComponent:
		sb.WriteString(v.name)
	case *SelectorComponent:
		sb.WriteString(v.pattern)
	case *BlockNBTComponent:
		sb.WriteString(v.path)
	case *EntityNBTComponent:
		sb.WriteString(v.path)
	case *StorageNBTComponent:
		sb.WriteString(v.path)
	}
	for _, child := range c.Children() {
		writePlain(sb, child)
	}
}
