package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ricettario/internal/adapters/tui/styles"
	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// SearchKeyMap defines key bindings for the ingredient search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Clear  key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter", "x"),
		key.WithHelp("space", "toggle"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// SearchModel shows the numbered ingredient catalog. Toggled ingredients
// narrow the results to recipes containing all of them.
type SearchModel struct {
	ViewState
	repo     ports.RecipeRepository
	catalog  []string
	selected map[string]bool
	results  []domain.Recipe
	pager    *Paginator
}

// NewSearchModel creates a new search view model
func NewSearchModel(repo ports.RecipeRepository) *SearchModel {
	return &SearchModel{
		repo:     repo,
		selected: make(map[string]bool),
		pager:    NewPaginator(15),
	}
}

// Reset clears the selection and reloads the catalog
func (m *SearchModel) Reset() tea.Cmd {
	m.selected = make(map[string]bool)
	m.results = nil
	m.catalog = nil
	m.pager.Reset()
	m.ClearMessage()
	return m.loadCatalog
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return m.loadCatalog
}

func (m *SearchModel) loadCatalog() tea.Msg {
	catalog, err := commands.NewListIngredientsCommand(m.repo).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return catalogLoadedMsg{catalog}
}

type catalogLoadedMsg struct {
	catalog []string
}

type searchResultsMsg struct {
	results []domain.Recipe
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.pager.SetPageSize(max(msg.Height-12, 5))
		return m, nil

	case catalogLoadedMsg:
		m.catalog = msg.catalog
		m.pager.SetTotal(len(m.catalog))
		return m, nil

	case searchResultsMsg:
		m.results = msg.results
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, SearchKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, SearchKeys.Toggle):
			i := m.pager.Cursor()
			if i < 0 || i >= len(m.catalog) {
				return m, nil
			}
			name := m.catalog[i]
			if m.selected[name] {
				delete(m.selected, name)
			} else {
				m.selected[name] = true
			}
			return m, m.search()

		case key.Matches(msg, SearchKeys.Clear):
			m.selected = make(map[string]bool)
			m.results = nil
			return m, nil
		}
	}

	return m, nil
}

// Selection returns the toggled ingredients in catalog order
func (m *SearchModel) Selection() []string {
	var out []string
	for _, name := range m.catalog {
		if m.selected[name] {
			out = append(out, name)
		}
	}
	return out
}

func (m *SearchModel) search() tea.Cmd {
	selection := m.Selection()
	if len(selection) == 0 {
		m.results = nil
		return nil
	}
	return func() tea.Msg {
		results, err := commands.NewSearchByIngredientsCommand(m.repo, selection...).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return searchResultsMsg{results}
	}
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder().
		Title("Search by Ingredients").
		Subtitle("Recipes must contain every selected ingredient.")

	if len(m.catalog) == 0 {
		v.Muted("No ingredients yet.").BlankLine()
		return v.Message(m.Message, m.MessageErr).Help(SearchKeys.Cancel).String()
	}

	var left string
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		name := m.catalog[i]
		mark := styles.Unchecked
		if m.selected[name] {
			mark = styles.Checked
		}
		line := fmt.Sprintf("%s%2d. %s", mark, i+1, name)
		if i == m.pager.Cursor() {
			line = styles.ListSelected.Render(line)
		}
		left += line + "\n"
	}
	if m.pager.TotalPages() > 1 {
		left += styles.MutedText.Render(m.pager.Status())
	}

	right := m.renderResults()

	return v.Raw(lipgloss.JoinHorizontal(lipgloss.Top, left, styles.Detail.Render(right))).
		BlankLine().BlankLine().
		Message(m.Message, m.MessageErr).
		Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Toggle, SearchKeys.Clear, SearchKeys.Cancel).
		String()
}

func (m *SearchModel) renderResults() string {
	selection := m.Selection()
	if len(selection) == 0 {
		return styles.MutedText.Render("Select ingredients to search")
	}

	out := styles.InputLabel.Render(domain.FormatIngredientList(selection)) + "\n\n"
	if len(m.results) == 0 {
		return out + styles.MutedText.Render("No recipes contain all of them")
	}
	for _, r := range m.results {
		out += RenderRecipeLine(r, false) + "\n"
	}
	return out
}
