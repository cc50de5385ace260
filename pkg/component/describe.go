package component

// Node is an exported, comparable snapshot of a component tree used for
// inspection, test assertions and CLI output. It is not a wire format.
type Node struct {
	Kind      Kind       `json:"kind" yaml:"kind"`
	Content   string     `json:"content,omitempty" yaml:"content,omitempty"`
	Key       string     `json:"key,omitempty" yaml:"key,omitempty"`
	Fallback  string     `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Args      []Node     `json:"args,omitempty" yaml:"args,omitempty"`
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"`
	Objective string     `json:"objective,omitempty" yaml:"objective,omitempty"`
	Pattern   string     `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	NBTPath   string     `json:"nbt_path,omitempty" yaml:"nbt_path,omitempty"`
	Interpret bool       `json:"interpret,omitempty" yaml:"interpret,omitempty"`
	Pos       string     `json:"pos,omitempty" yaml:"pos,omitempty"`
	Selector  string     `json:"selector,omitempty" yaml:"selector,omitempty"`
	Storage   string     `json:"storage,omitempty" yaml:"storage,omitempty"`
	Separator *Node      `json:"separator,omitempty" yaml:"separator,omitempty"`
	Style     *StyleNode `json:"style,omitempty" yaml:"style,omitempty"`
	Children  []Node     `json:"children,omitempty" yaml:"children,omitempty"`
}

// StyleNode is the exported snapshot of a Style.
type StyleNode struct {
	Color       string          `json:"color,omitempty" yaml:"color,omitempty"`
	Decorations map[string]bool `json:"decorations,omitempty" yaml:"decorations,omitempty"`
	Font        string          `json:"font,omitempty" yaml:"font,omitempty"`
	Insertion   string          `json:"insertion,omitempty" yaml:"insertion,omitempty"`
	Click       *ClickEvent     `json:"click,omitempty" yaml:"click,omitempty"`
	Hover       *Node           `json:"hover,omitempty" yaml:"hover,omitempty"`
}

// Describe snapshots a component tree.
func Describe(c Like) Node {
	comp := AsComponent(c)
	n := Node{Kind: comp.Kind()}

	switch v := comp.(type) {
	case *TextComponent:
		n.Content = v.content
	case *TranslatableComponent:
		n.Key = v.key
		n.Fallback = v.fallback
		n.Args = describeAll(v.args)
	case *KeybindComponent:
		n.Key = v.keybind
	case *ScoreComponent:
		n.Name = v.name
		n.Objective = v.objective
	case *SelectorComponent:
		n.Pattern = v.pattern
		n.Separator = describeOptional(v.separator)
	case *BlockNBTComponent:
		describeNBT(&n, v.nbtBase)
		if v.pos != nil {
			n.Pos = v.pos.String()
		}
	case *EntityNBTComponent:
		describeNBT(&n, v.nbtBase)
		n.Selector = v.selector
	case *StorageNBTComponent:
		describeNBT(&n, v.nbtBase)
		n.Storage = v.storage.String()
	}

	n.Style = DescribeStyle(comp.Style())
	n.Children = describeAll(comp.Children())
	return n
}

// DescribeStyle snapshots a style, returning nil for the empty style.
func DescribeStyle(s Style) *StyleNode {
	if s.IsEmpty() {
		return nil
	}
	sn := &StyleNode{Insertion: s.insertion, Click: s.click}
	if c, ok := s.Color(); ok {
		sn.Color = c.String()
	}
	for _, d := range Decorations() {
		switch s.Decoration(d) {
		case True, False:
			if sn.Decorations == nil {
				sn.Decorations = make(map[string]bool)
			}
			sn.Decorations[d.String()] = s.Decoration(d) == True
		}
	}
	if f, ok := s.Font(); ok {
		sn.Font = f.String()
	}
	if s.hover != nil {
		h := Describe(s.hover.text)
		sn.Hover = &h
	}
	return sn
}

func describeNBT(n *Node, v nbtBase) {
	n.NBTPath = v.path
	n.Interpret = v.interpret
	n.Separator = describeOptional(v.separator)
}

func describeOptional(c Component) *Node {
	if c == nil {
		return nil
	}
	n := Describe(c)
	return &n
}

func describeAll(cs []Component) []Node {
	if len(cs) == 0 {
		return nil
	}
	nodes := make([]Node, len(cs))
	for i, c := range cs {
		nodes[i] = Describe(c)
	}
	return nodes
}
