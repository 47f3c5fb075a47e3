package views

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ricettario/internal/adapters/tui/styles"
	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// DeleteKeyMap defines key bindings for the delete confirmation
type DeleteKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var DeleteKeys = DeleteKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "delete"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc", "q"),
		key.WithHelp("n/esc", "keep it"),
	),
}

var errNoTarget = errors.New("no recipe selected")

// DeleteModel asks for a yes/no before removing a recipe
type DeleteModel struct {
	ViewState
	repo   ports.RecipeRepository
	target *domain.Recipe
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(repo ports.RecipeRepository) *DeleteModel {
	return &DeleteModel{repo: repo}
}

// SetTarget sets the recipe to delete
func (m *DeleteModel) SetTarget(r domain.Recipe) {
	m.target = &r
	m.ClearMessage()
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DeleteKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, DeleteKeys.Confirm):
			return m, m.remove
		}
	}
	return m, nil
}

func (m *DeleteModel) remove() tea.Msg {
	if m.target == nil {
		return ActionErrMsg{Err: errNoTarget}
	}

	result, err := commands.NewDeleteRecipeCommand(m.repo, m.target.ID).Execute(context.Background())
	if err != nil {
		return ActionErrMsg{Err: err}
	}
	return ActionDoneMsg{Message: result.Message}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	v := NewViewBuilder().Title("Delete Recipe")
	if m.target == nil {
		return v.Muted(errNoTarget.Error()).BlankLine().Help(DeleteKeys.Cancel).String()
	}

	return v.Line(styles.InputLabel.Render("This recipe will be removed for good:")).
		Line("  " + RenderRecipeLine(*m.target, false)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Line(styles.ErrorMsg.Render("Delete it?")).
		BlankLine().
		Help(DeleteKeys.Confirm, DeleteKeys.Cancel).
		String()
}
