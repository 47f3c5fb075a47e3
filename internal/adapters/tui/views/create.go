package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ricettario/internal/application"
	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

const (
	fieldName = iota
	fieldTime
	fieldIngredients
)

// CreateModel is the model for the new recipe form
type CreateModel struct {
	ViewState
	repo       ports.RecipeRepository
	classifier domain.Classifier
	form       *InputForm
}

// NewCreateModel creates a new create view model
func NewCreateModel(repo ports.RecipeRepository, classifier domain.Classifier) *CreateModel {
	return &CreateModel{
		repo:       repo,
		classifier: classifier,
		form: NewInputForm(
			NewInputField("Name", "Pancakes", "letters, digits and spaces", application.MaxFieldLength),
			NewInputField("Cooking time (minutes)", "15", "", 6),
			NewInputField("Ingredients", "flour, eggs, milk", "comma separated, letters and spaces", 0),
		),
	}
}

// Reset clears the form for a new recipe
func (m *CreateModel) Reset() {
	m.form.Reset()
	m.ClearMessage()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.create()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *CreateModel) create() tea.Cmd {
	name := m.form.Value(fieldName)
	timeText := m.form.Value(fieldTime)
	ingredients := domain.ParseIngredientList(m.form.Value(fieldIngredients))

	return func() tea.Msg {
		minutes, err := commands.ParseCookingTime(timeText)
		if err != nil {
			return ActionErrMsg{Err: err}
		}

		result, err := commands.NewCreateRecipeCommand(m.repo, m.classifier, name, minutes, ingredients).
			Execute(context.Background())
		if err != nil {
			return ActionErrMsg{Err: err}
		}
		return ActionDoneMsg{Message: result.Message}
	}
}

// View renders the create view
func (m *CreateModel) View() string {
	v := NewViewBuilder().
		Title("New Recipe").
		Subtitle("Difficulty is computed from cooking time and ingredient count.")

	fields := make([]string, 0, len(m.form.Fields))
	for i := range m.form.Fields {
		fields = append(fields, m.form.RenderField(i))
	}

	return v.Raw(strings.Join(fields, "\n\n")).
		BlankLine().BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("create")).
		String()
}
