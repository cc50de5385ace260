package component

import "strconv"

// ClickAction is what happens when text is clicked.
type ClickAction string

// Click actions.
const (
	OpenURLAction         ClickAction = "open_url"
	RunCommandAction      ClickAction = "run_command"
	SuggestCommandAction  ClickAction = "suggest_command"
	ChangePageAction      ClickAction = "change_page"
	CopyToClipboardAction ClickAction = "copy_to_clipboard"
)

// ClickEvent is a click action with its value.
type ClickEvent struct {
	Action ClickAction `json:"action" yaml:"action"`
	Value  string      `json:"value" yaml:"value"`
}

// OpenURL opens a URL when clicked.
func OpenURL(url string) ClickEvent { return ClickEvent{Action: OpenURLAction, Value: url} }

// RunCommand runs a command when clicked.
func RunCommand(command string) ClickEvent {
	return ClickEvent{Action: RunCommandAction, Value: command}
}

// SuggestCommand puts a command in the chat box when clicked.
func SuggestCommand(command string) ClickEvent {
	return ClickEvent{Action: SuggestCommandAction, Value: command}
}

// ChangePage turns a book to the given page when clicked.
func ChangePage(page int) ClickEvent {
	return ClickEvent{Action: ChangePageAction, Value: strconv.Itoa(page)}
}

// CopyToClipboard copies text when clicked.
func CopyToClipboard(text string) ClickEvent {
	return ClickEvent{Action: CopyToClipboardAction, Value: text}
}

// ApplyTo sets the click event.
func (e ClickEvent) ApplyTo(b *StyleBuilder) { b.ClickEvent(e) }

// HoverEvent shows a component as a tooltip.
type HoverEvent struct {
	text Component
}

// ShowText creates a tooltip hover event.
func ShowText(text Like) HoverEvent {
	return HoverEvent{text: AsComponent(text)}
}

// Text returns the tooltip component.
func (e HoverEvent) Text() Component { return e.text }

// ApplyTo sets the hover event.
func (e HoverEvent) ApplyTo(b *StyleBuilder) { b.HoverEvent(e) }
