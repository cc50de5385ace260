// Package document loads join documents: YAML files that describe a list of
// components and how to join them. Documents are decoded with goccy/go-yaml
// and turned into components through the richtext factories, so every
// key, color and position error surfaces exactly as pkg/component raises it.
package document

import (
	"context"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/richtext"
	"github.com/agentstation/richtext/pkg/component"
	"github.com/agentstation/richtext/pkg/errors"
	"github.com/agentstation/richtext/pkg/logging"
)

// Document describes one join.
type Document struct {
	Separator *string    `yaml:"separator,omitempty"`
	Prefix    string     `yaml:"prefix,omitempty"`
	Suffix    string     `yaml:"suffix,omitempty"`
	Limit     *int       `yaml:"limit,omitempty"`
	Truncated *string    `yaml:"truncated,omitempty"`
	Style     *StyleSpec `yaml:"style,omitempty"`
	Items     []Item     `yaml:"items"`
}

// Load reads and parses a document file.
func Load(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(logging.WithDocument(ctx, path), data, path)
}

// Parse decodes a document. Unknown fields are rejected. source names the
// input in errors and may be empty.
func Parse(ctx context.Context, data []byte, source string) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.NewParseError("yaml", source, yaml.FormatError(err, false, false), err)
	}

	logging.FromContext(ctx).Debug().
		Int("items", len(doc.Items)).
		Bool("limited", doc.Limit != nil && *doc.Limit > 0).
		Msg("Parsed join document")

	return &doc, nil
}

// Options returns the join options of the document, taking anything the
// document leaves unset from defaults.
func (d *Document) Options(defaults richtext.JoinOptions) richtext.JoinOptions {
	opts := defaults
	if d.Separator != nil {
		opts.Separator = textOrEmpty(*d.Separator)
	}
	if d.Prefix != "" {
		opts.Prefix = richtext.Text(d.Prefix)
	}
	if d.Suffix != "" {
		opts.Suffix = richtext.Text(d.Suffix)
	}
	if d.Limit != nil {
		opts.Limit = *d.Limit
	}
	if d.Truncated != nil {
		opts.Truncated = textOrEmpty(*d.Truncated)
	}
	return opts
}

// Build converts every item and joins them under a text builder carrying
// the document style. The first item error aborts the build.
func (d *Document) Build(ctx context.Context, defaults richtext.JoinOptions) (component.Component, error) {
	items := make([]component.Component, 0, len(d.Items))
	for i, item := range d.Items {
		c, err := item.Component()
		if err != nil {
			logging.FromContext(logging.WithError(ctx, err)).Debug().Int("item", i).Msg("Invalid join item")
			return nil, err
		}
		items = append(items, c)
	}

	b := component.NewTextBuilder()
	if d.Style != nil {
		style, err := d.Style.Style()
		if err != nil {
			return nil, err
		}
		b.SetStyle(style)
	}

	c := richtext.JoinTo(b, items, d.Options(defaults)).Build()
	logging.FromContext(ctx).Debug().
		Int("items", len(items)).
		Int("children", len(c.Children())).
		Msg("Built join document")
	return c, nil
}

// textOrEmpty keeps an explicitly empty string from falling back to a default.
func textOrEmpty(s string) component.Component {
	if s == "" {
		return component.Empty()
	}
	return richtext.Text(s)
}

// Item describes one component. Exactly one of Text, Translatable, Keybind,
// Score, Selector or NBT must be set.
type Item struct {
	Text         *string    `yaml:"text,omitempty"`
	Translatable string     `yaml:"translatable,omitempty"`
	Args         []Item     `yaml:"args,omitempty"`
	Fallback     string     `yaml:"fallback,omitempty"`
	Keybind      string     `yaml:"keybind,omitempty"`
	Score        *ScoreSpec `yaml:"score,omitempty"`
	Selector     string     `yaml:"selector,omitempty"`
	NBT          *NBTSpec   `yaml:"nbt,omitempty"`
	Style        *StyleSpec `yaml:"style,omitempty"`
	Children     []Item     `yaml:"children,omitempty"`
}

// ScoreSpec names a scoreboard value.
type ScoreSpec struct {
	Name      string `yaml:"name"`
	Objective string `yaml:"objective"`
}

// NBTSpec describes an NBT component; exactly one source must be set.
type NBTSpec struct {
	Path      string `yaml:"path"`
	Interpret bool   `yaml:"interpret,omitempty"`
	Block     string `yaml:"block,omitempty"`
	Entity    string `yaml:"entity,omitempty"`
	Storage   string `yaml:"storage,omitempty"`
}

func (it Item) kinds() []string {
	var set []string
	if it.Text != nil {
		set = append(set, "text")
	}
	if it.Translatable != "" {
		set = append(set, "translatable")
	}
	if it.Keybind != "" {
		set = append(set, "keybind")
	}
	if it.Score != nil {
		set = append(set, "score")
	}
	if it.Selector != "" {
		set = append(set, "selector")
	}
	if it.NBT != nil {
		set = append(set, "nbt")
	}
	return set
}

// Component converts the item.
func (it Item) Component() (component.Component, error) {
	kinds := it.kinds()
	if len(kinds) != 1 {
		return nil, errors.NewValidationError("item", kinds,
			"exactly one of text, translatable, keybind, score, selector or nbt is required, got ["+strings.Join(kinds, ", ")+"]")
	}

	var style component.Style
	if it.Style != nil {
		s, err := it.Style.Style()
		if err != nil {
			return nil, err
		}
		style = s
	}

	children := make([]component.Like, 0, len(it.Children))
	for _, child := range it.Children {
		c, err := child.Component()
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	var c component.Component
	switch kinds[0] {
	case "text":
		c = richtext.TextWith(func(b *component.TextBuilder) {
			b.Content(*it.Text)
			b.SetStyle(style)
			b.Append(children...)
		})
	case "translatable":
		args := make([]component.Like, 0, len(it.Args))
		for _, a := range it.Args {
			ac, err := a.Component()
			if err != nil {
				return nil, err
			}
			args = append(args, ac)
		}
		c = richtext.TranslatableWith(it.Translatable, func(b *component.TranslatableBuilder) {
			b.Args(args...)
			b.Fallback(it.Fallback)
			b.SetStyle(style)
			b.Append(children...)
		})
	case "keybind":
		c = richtext.KeybindWith(it.Keybind, func(b *component.KeybindBuilder) {
			b.SetStyle(style)
			b.Append(children...)
		})
	case "score":
		c = richtext.ScoreWith(it.Score.Name, it.Score.Objective, func(b *component.ScoreBuilder) {
			b.SetStyle(style)
			b.Append(children...)
		})
	case "selector":
		c = richtext.SelectorWith(it.Selector, func(b *component.SelectorBuilder) {
			b.SetStyle(style)
			b.Append(children...)
		})
	case "nbt":
		return it.NBT.component(style, children)
	}
	return c, nil
}

func (n *NBTSpec) component(style component.Style, children []component.Like) (component.Component, error) {
	sources := 0
	for _, s := range []string{n.Block, n.Entity, n.Storage} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return nil, errors.NewValidationError("nbt", n.Path, "exactly one of block, entity or storage is required")
	}

	switch {
	case n.Block != "":
		return richtext.BlockNBT(n.Path, n.Block, func(b *component.BlockNBTBuilder) {
			b.Interpret(n.Interpret)
			b.SetStyle(style)
			b.Append(children...)
		})
	case n.Entity != "":
		return richtext.EntityNBT(n.Path, n.Entity, func(b *component.EntityNBTBuilder) {
			b.Interpret(n.Interpret)
			b.SetStyle(style)
			b.Append(children...)
		}), nil
	default:
		return richtext.StorageNBT(n.Path, n.Storage, func(b *component.StorageNBTBuilder) {
			b.Interpret(n.Interpret)
			b.SetStyle(style)
			b.Append(children...)
		})
	}
}
