package document

import (
	"github.com/agentstation/richtext"
	"github.com/agentstation/richtext/pkg/component"
	"github.com/agentstation/richtext/pkg/errors"
)

// StyleSpec is the YAML form of a style. Decorations left out stay unset.
type StyleSpec struct {
	Color         string     `yaml:"color,omitempty"`
	Bold          *bool      `yaml:"bold,omitempty"`
	Italic        *bool      `yaml:"italic,omitempty"`
	Underlined    *bool      `yaml:"underlined,omitempty"`
	Strikethrough *bool      `yaml:"strikethrough,omitempty"`
	Obfuscated    *bool      `yaml:"obfuscated,omitempty"`
	Font          string     `yaml:"font,omitempty"`
	Insertion     string     `yaml:"insertion,omitempty"`
	Click         *ClickSpec `yaml:"click,omitempty"`
	Hover         string     `yaml:"hover,omitempty"`
}

// ClickSpec is the YAML form of a click event.
type ClickSpec struct {
	Action string `yaml:"action"`
	Value  string `yaml:"value"`
}

var clickActions = map[string]component.ClickAction{
	string(component.OpenURLAction):         component.OpenURLAction,
	string(component.RunCommandAction):      component.RunCommandAction,
	string(component.SuggestCommandAction):  component.SuggestCommandAction,
	string(component.ChangePageAction):      component.ChangePageAction,
	string(component.CopyToClipboardAction): component.CopyToClipboardAction,
}

// Style converts the YAML style block into a component style.
func (s *StyleSpec) Style() (component.Style, error) {
	var values []component.StyleApplicable

	if s.Color != "" {
		c, err := richtext.Color(s.Color)
		if err != nil {
			return component.Style{}, err
		}
		values = append(values, c)
	}

	for d, v := range map[component.Decoration]*bool{
		component.Bold:          s.Bold,
		component.Italic:        s.Italic,
		component.Underlined:    s.Underlined,
		component.Strikethrough: s.Strikethrough,
		component.Obfuscated:    s.Obfuscated,
	} {
		if v == nil {
			continue
		}
		state := component.False
		if *v {
			state = component.True
		}
		values = append(values, d.As(state))
	}

	if s.Font != "" {
		k, err := richtext.Key(s.Font)
		if err != nil {
			return component.Style{}, err
		}
		values = append(values, component.Font(k))
	}
	if s.Insertion != "" {
		values = append(values, component.Insertion(s.Insertion))
	}
	if s.Click != nil {
		action, ok := clickActions[s.Click.Action]
		if !ok {
			return component.Style{}, errors.NewValidationError("click.action", s.Click.Action, "unknown click action")
		}
		values = append(values, component.ClickEvent{Action: action, Value: s.Click.Value})
	}
	if s.Hover != "" {
		values = append(values, component.ShowText(richtext.Text(s.Hover)))
	}

	return richtext.Style(values...), nil
}
