package output

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/agentstation/richtext/pkg/component"
)

// TreeToTableData flattens a component description into one row per node.
// Paths are dotted child indexes from the root, e.g. "0.2".
func TreeToTableData(root component.Node) Data {
	data := Data{
		Headers:         []string{"Path", "Kind", "Value", "Style"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft},
	}
	walk(&data, root, "")
	return data
}

func walk(data *Data, n component.Node, path string) {
	label := path
	if label == "" {
		label = "root"
	}
	data.Rows = append(data.Rows, []string{label, string(n.Kind), nodeValue(n), styleSummary(n.Style)})

	for i, child := range n.Children {
		childPath := strconv.Itoa(i)
		if path != "" {
			childPath = path + "." + childPath
		}
		walk(data, child, childPath)
	}
}

func nodeValue(n component.Node) string {
	switch n.Kind {
	case component.KindText:
		return strconv.Quote(n.Content)
	case component.KindTranslatable, component.KindKeybind:
		return n.Key
	case component.KindScore:
		return n.Name + " " + n.Objective
	case component.KindSelector:
		return n.Pattern
	case component.KindBlockNBT:
		return n.NBTPath + " @ " + n.Pos
	case component.KindEntityNBT:
		return n.NBTPath + " @ " + n.Selector
	case component.KindStorageNBT:
		return n.NBTPath + " @ " + n.Storage
	default:
		return ""
	}
}

func styleSummary(s *component.StyleNode) string {
	if s == nil {
		return ""
	}
	var parts []string
	if s.Color != "" {
		parts = append(parts, s.Color)
	}
	names := make([]string, 0, len(s.Decorations))
	for name := range s.Decorations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if s.Decorations[name] {
			parts = append(parts, name)
		} else {
			parts = append(parts, "!"+name)
		}
	}
	if s.Font != "" {
		parts = append(parts, "font="+s.Font)
	}
	if s.Click != nil {
		parts = append(parts, string(s.Click.Action)+"="+s.Click.Value)
	}
	if s.Hover != nil {
		parts = append(parts, "hover")
	}
	return strings.Join(parts, " ")
}

// WriteComponent prints c in the given format. Text prints the flattened
// plain text, table prints one row per node, json and yaml print the
// structural description.
func WriteComponent(w io.Writer, c component.Like, format Format) error {
	switch format {
	case FormatText, "":
		return NewFormatter(FormatText).Format(w, component.PlainText(c))
	case FormatTable:
		return NewFormatter(FormatTable).Format(w, TreeToTableData(component.Describe(c)))
	default:
		return NewFormatter(format).Format(w, component.Describe(c))
	}
}
