package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ricettario/internal/adapters/tui/styles"
)

// FormKeyMap holds the bindings shared by the recipe forms
type FormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
}

var FormKeys = FormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
}

// InputField is one labelled text input. Hint is shown muted under it.
type InputField struct {
	Label string
	Hint  string
	Input textinput.Model
}

// NewInputField builds a field; a charLimit of 0 keeps the textinput default
func NewInputField(label, placeholder, hint string, charLimit int) InputField {
	in := textinput.New()
	in.Placeholder = placeholder
	if charLimit > 0 {
		in.CharLimit = charLimit
	}
	return InputField{Label: label, Hint: hint, Input: in}
}

// InputForm is a column of fields with exactly one focused at a time
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         FormKeyMap
}

// NewInputForm creates a form focused on its first field
func NewInputForm(fields ...InputField) *InputForm {
	f := &InputForm{Fields: fields, Keys: FormKeys}
	f.focus(0)
	return f
}

// Init starts the cursor blink
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves focus on next/prev keys and feeds everything else to the
// focused input. The bool reports whether the form consumed a focus key.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && len(f.Fields) > 1 {
		switch {
		case key.Matches(k, f.Keys.Next):
			f.focus(f.FocusedField + 1)
			return true, nil
		case key.Matches(k, f.Keys.Prev):
			f.focus(f.FocusedField - 1)
			return true, nil
		}
	}

	if !f.valid(f.FocusedField) {
		return false, nil
	}
	var cmd tea.Cmd
	f.Fields[f.FocusedField].Input, cmd = f.Fields[f.FocusedField].Input.Update(msg)
	return false, cmd
}

// focus wraps i around the field count, blurring every other field
func (f *InputForm) focus(i int) {
	n := len(f.Fields)
	if n == 0 {
		return
	}
	f.FocusedField = (i%n + n) % n
	for j := range f.Fields {
		if j == f.FocusedField {
			f.Fields[j].Input.Focus()
		} else {
			f.Fields[j].Input.Blur()
		}
	}
}

func (f *InputForm) valid(i int) bool {
	return i >= 0 && i < len(f.Fields)
}

// Value returns the trimmed text of field i
func (f *InputForm) Value(i int) string {
	if !f.valid(i) {
		return ""
	}
	return strings.TrimSpace(f.Fields[i].Input.Value())
}

// SetValue replaces the text of field i
func (f *InputForm) SetValue(i int, value string) {
	if f.valid(i) {
		f.Fields[i].Input.SetValue(value)
	}
}

// Reset empties every field and focuses the first
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
	}
	f.focus(0)
}

// RenderField draws field i with its label and hint
func (f *InputForm) RenderField(i int) string {
	if !f.valid(i) {
		return ""
	}
	field := f.Fields[i]

	box := styles.InputField
	if i == f.FocusedField {
		box = styles.InputFocused
	}

	lines := []string{styles.InputLabel.Render(field.Label), box.Render(field.Input.View())}
	if field.Hint != "" {
		lines = append(lines, styles.MutedText.Render(field.Hint))
	}
	return strings.Join(lines, "\n")
}

// RenderHelp draws the key hints, naming the submit action
func (f *InputForm) RenderHelp(action string) string {
	submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", action))
	if len(f.Fields) > 1 {
		return RenderHelpLine(f.Keys.Next, submit, f.Keys.Cancel)
	}
	return RenderHelpLine(submit, f.Keys.Cancel)
}
