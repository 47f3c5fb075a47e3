package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ricettario/internal/adapters/tui/styles"
	"ricettario/internal/application"
	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// EditKeyMap defines key bindings for the edit view
type EditKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
}

var EditKeys = EditKeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
}

// EditModel edits one field of a recipe at a time
type EditModel struct {
	ViewState
	repo       ports.RecipeRepository
	classifier domain.Classifier
	recipe     domain.Recipe
	field      int
	form       *InputForm
}

// NewEditModel creates a new edit view model
func NewEditModel(repo ports.RecipeRepository, classifier domain.Classifier) *EditModel {
	return &EditModel{
		repo:       repo,
		classifier: classifier,
		form:       NewInputForm(NewInputField("New value", "", "", 0)),
	}
}

// SetRecipe selects the recipe to edit and starts on its name
func (m *EditModel) SetRecipe(r domain.Recipe) {
	m.recipe = r
	m.ClearMessage()
	m.selectField(0)
}

// Field returns the field being edited
func (m *EditModel) Field() application.EditField {
	return application.EditFields[m.field]
}

func (m *EditModel) selectField(i int) {
	n := len(application.EditFields)
	m.field = (i%n + n) % n
	m.form.Reset()
	m.form.SetValue(0, currentValue(m.recipe, m.Field()))
	m.form.Fields[0].Input.CursorEnd()
}

func currentValue(r domain.Recipe, f application.EditField) string {
	switch f {
	case application.FieldName:
		return r.Name
	case application.FieldCookingTime:
		return strconv.Itoa(r.CookingTime)
	case application.FieldIngredients:
		return domain.FormatIngredientList(r.Ingredients)
	default:
		return ""
	}
}

// Init initializes the edit view
func (m *EditModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the edit view
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, EditKeys.NextField):
			m.selectField(m.field + 1)
			return m, nil

		case key.Matches(msg, EditKeys.PrevField):
			m.selectField(m.field - 1)
			return m, nil

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.save()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *EditModel) save() tea.Cmd {
	id := m.recipe.ID
	field := m.Field()
	value := m.form.Value(0)

	return func() tea.Msg {
		result, err := commands.NewEditRecipeCommand(m.repo, m.classifier, id, field, value).
			Execute(context.Background())
		if err != nil {
			return ActionErrMsg{Err: err}
		}
		return ActionDoneMsg{Message: result.Message}
	}
}

// View renders the edit view
func (m *EditModel) View() string {
	v := NewViewBuilder().
		Title(fmt.Sprintf("Edit Recipe %d", m.recipe.ID)).
		Subtitle(m.recipe.Name)

	tabs := make([]string, 0, len(application.EditFields))
	for i, f := range application.EditFields {
		if i == m.field {
			tabs = append(tabs, styles.ListSelected.Render(" "+f.String()+" "))
		} else {
			tabs = append(tabs, styles.MutedText.Render(" "+f.String()+" "))
		}
	}
	v.Line(strings.Join(tabs, " ")).BlankLine()

	if m.Field().Recalculates() {
		v.Muted(fmt.Sprintf("Difficulty is now %s and will be recalculated.", m.recipe.Difficulty))
	}

	return v.Raw(m.form.RenderField(0)).
		BlankLine().BlankLine().
		Message(m.Message, m.MessageErr).
		Help(EditKeys.NextField, m.form.Keys.Submit, m.form.Keys.Cancel).
		String()
}
