package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ricettario/internal/adapters/tui/styles"
	"ricettario/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	classifier domain.Classifier
}

// NewHelpModel creates a help view listing the active difficulty thresholds
func NewHelpModel(classifier domain.Classifier) *HelpModel {
	return &HelpModel{classifier: classifier}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

var helpSections = []helpSection{
	{"Recipes", []key.Binding{
		BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.PrevPage, BrowserKeys.NextPage,
		BrowserKeys.New, BrowserKeys.Edit, BrowserKeys.Delete, BrowserKeys.Copy,
		BrowserKeys.Search, BrowserKeys.Reload, BrowserKeys.Quit,
	}},
	{"Forms", []key.Binding{FormKeys.Next, FormKeys.Prev, FormKeys.Submit, FormKeys.Cancel}},
	{"Ingredient search", []key.Binding{SearchKeys.Toggle, SearchKeys.Clear, SearchKeys.Cancel}},
}

// View renders the help view
func (m *HelpModel) View() string {
	v := NewViewBuilder().Title("Ricettario Help")

	for _, sec := range helpSections {
		v.Line(styles.InputLabel.Render(sec.title))
		for _, b := range sec.bindings {
			h := b.Help()
			v.Line("  " + styles.HelpKey.Render(fmt.Sprintf("%-12s", h.Key)) + styles.HelpDesc.Render(h.Desc))
		}
		v.BlankLine()
	}

	v.Line(styles.InputLabel.Render("Difficulty"))
	if m.classifier != nil {
		v.Muted("  " + fmt.Sprint(m.classifier))
	}
	return v.Muted("  Recomputed whenever cooking time or ingredients change").
		BlankLine().
		Help(HelpKeys.Close).
		String()
}
