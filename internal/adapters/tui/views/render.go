package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"ricettario/internal/adapters/tui/styles"
	"ricettario/internal/domain"
)

// RenderHelpLine renders key bindings as "key desc • key desc"
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = styles.HelpKey.Render(h.Key) + " " + styles.HelpDesc.Render(h.Desc)
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderRecipe renders the detail pane for a recipe
func RenderRecipe(r domain.Recipe) string {
	field := func(label, value string) string {
		return styles.InputLabel.Render(label+":") + " " + value
	}

	lines := []string{
		styles.Title.Render(r.Name),
		field("ID", fmt.Sprint(r.ID)),
		field("Cooking time", fmt.Sprintf("%d minutes", r.CookingTime)),
		field("Difficulty", styles.DifficultyBadge(r.Difficulty)),
		styles.InputLabel.Render("Ingredients:"),
	}
	for _, ing := range r.Ingredients {
		lines = append(lines, "  • "+ing)
	}
	return strings.Join(lines, "\n")
}

// RenderRecipeLine renders the one-line list entry for a recipe
func RenderRecipeLine(r domain.Recipe, selected bool) string {
	text := fmt.Sprintf("%3d  %s", r.ID, r.Name)
	if selected {
		return styles.ListSelected.Render(text)
	}
	return styles.ListItem.Render(text) + " " + styles.MutedText.Render("("+r.Difficulty.String()+")")
}

// ViewBuilder assembles a screen top to bottom and pads it with the app style
type ViewBuilder struct {
	parts []string
}

// NewViewBuilder creates an empty screen
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

func (v *ViewBuilder) add(s ...string) *ViewBuilder {
	v.parts = append(v.parts, s...)
	return v
}

// Title adds the screen heading
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	return v.add(styles.Title.Render(title), "\n\n")
}

// Subtitle adds an italic line under the heading
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	return v.add(styles.Subtitle.Render(subtitle), "\n\n")
}

// Line adds text followed by a newline
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	return v.add(text, "\n")
}

// BlankLine adds an empty line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	return v.add("\n")
}

// Muted adds a grey line
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.Line(styles.MutedText.Render(text))
}

// Message adds a success or error message; empty messages add nothing
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	style := styles.Success
	if isError {
		style = styles.ErrorMsg
	}
	return v.add(style.Render(message), "\n\n")
}

// Help adds the key help line
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	return v.add(RenderHelpLine(bindings...))
}

// Raw adds text as is
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	return v.add(text)
}

// String joins the screen and applies the app padding
func (v *ViewBuilder) String() string {
	return styles.App.Render(strings.Join(v.parts, ""))
}
