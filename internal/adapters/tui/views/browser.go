package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ricettario/internal/adapters/console"
	"ricettario/internal/adapters/tui/styles"
	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Search   key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown", "l", "right"),
		key.WithHelp("l/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup", "h", "left"),
		key.WithHelp("h/←", "prev page"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Search: key.NewBinding(
		key.WithKeys("/", "s"),
		key.WithHelp("/", "by ingredients"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// BrowserModel lists recipes with a detail pane for the selected one
type BrowserModel struct {
	ViewState
	repo    ports.RecipeRepository
	recipes []domain.Recipe
	pager   *Paginator
	loaded  bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(repo ports.RecipeRepository) *BrowserModel {
	return &BrowserModel{
		repo:  repo,
		pager: NewPaginator(10),
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadRecipes
}

func (m *BrowserModel) loadRecipes() tea.Msg {
	recipes, err := commands.NewListRecipesCommand(m.repo).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return recipesLoadedMsg{recipes}
}

type recipesLoadedMsg struct {
	recipes []domain.Recipe
}

type copiedMsg struct {
	name string
	err  error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case recipesLoadedMsg:
		m.recipes = msg.recipes
		m.loaded = true
		m.pager.SetTotal(len(m.recipes))
		return m, nil

	case errMsg:
		m.loaded = true
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.SetMessage("Clipboard unavailable: "+msg.err.Error(), true)
		} else {
			m.SetMessage(fmt.Sprintf("Copied %s to clipboard", msg.name), false)
		}
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.NextPage):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.New):
			return m, func() tea.Msg { return SwitchToCreateMsg{} }

		case key.Matches(msg, BrowserKeys.Edit):
			if r, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToEditMsg{Recipe: r} }
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Delete):
			if r, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToDeleteMsg{Recipe: r} }
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if r, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return copiedMsg{name: r.Name, err: copyToClipboard(console.FormatRecipe(r))}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Search):
			return m, func() tea.Msg { return SwitchToSearchMsg{} }

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

// Selected returns the recipe under the cursor
func (m *BrowserModel) Selected() (domain.Recipe, bool) {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.recipes) {
		return m.recipes[i], true
	}
	return domain.Recipe{}, false
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	v := NewViewBuilder().
		Title("Ricettario").
		Subtitle(fmt.Sprintf("%d recipes", len(m.recipes)))

	if len(m.recipes) == 0 {
		v.Muted("No recipes yet. Press n to add one.").BlankLine()
	} else {
		var list strings.Builder
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			list.WriteString(RenderRecipeLine(m.recipes[i], i == m.pager.Cursor()))
			list.WriteString("\n")
		}
		if m.pager.TotalPages() > 1 {
			list.WriteString(styles.MutedText.Render(m.pager.Status()))
		}

		selected, _ := m.Selected()
		v.Raw(lipgloss.JoinHorizontal(lipgloss.Top,
			list.String(),
			styles.Detail.Render(RenderRecipe(selected)),
		)).BlankLine().BlankLine()
	}

	return v.Message(m.Message, m.MessageErr).
		Help(BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.New, BrowserKeys.Edit,
			BrowserKeys.Delete, BrowserKeys.Search, BrowserKeys.Copy, BrowserKeys.Help, BrowserKeys.Quit).
		String()
}

// SetSize updates the view dimensions and the page size
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// title, subtitle, message and help lines
	m.pager.SetPageSize(max(height-10, 3))
}

// Reload reloads the recipes from the store
func (m *BrowserModel) Reload() tea.Cmd {
	m.loaded = false
	return m.loadRecipes
}
