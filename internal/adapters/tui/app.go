package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"ricettario/internal/adapters/tui/views"
	"ricettario/internal/domain"
	"ricettario/internal/logging"
	"ricettario/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewCreate
	ViewEdit
	ViewDelete
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo ports.RecipeRepository

	state   ViewState
	browser *views.BrowserModel
	create  *views.CreateModel
	edit    *views.EditModel
	delete  *views.DeleteModel
	search  *views.SearchModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.RecipeRepository, classifier domain.Classifier) *App {
	return &App{
		repo:    repo,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(repo),
		create:  views.NewCreateModel(repo, classifier),
		edit:    views.NewEditModel(repo, classifier),
		delete:  views.NewDeleteModel(repo),
		search:  views.NewSearchModel(repo),
		help:    views.NewHelpModel(classifier),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.edit.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.search.Update(msg)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.Reset()
		return a, a.create.Init()

	case views.SwitchToEditMsg:
		a.state = ViewEdit
		a.edit.SetRecipe(msg.Recipe)
		return a, a.edit.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.Recipe)
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		return a, a.search.Reset()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	// Outcome of create, edit and delete
	case views.ActionDoneMsg:
		logging.Debug().Str("view", a.stateName()).Msg(msg.Message)
		a.state = ViewBrowser
		a.browser.SetMessage(msg.Message, false)
		return a, a.browser.Reload()

	case views.ActionErrMsg:
		logging.Debug().Err(msg.Err).Str("view", a.stateName()).Msg("action failed")
		switch a.state {
		case ViewCreate:
			a.create.SetMessage(msg.Err.Error(), true)
		case ViewEdit:
			a.edit.SetMessage(msg.Err.Error(), true)
		case ViewDelete:
			a.delete.SetMessage(msg.Err.Error(), true)
		default:
			a.browser.SetMessage(msg.Err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewEdit:
		_, cmd = a.edit.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) stateName() string {
	switch a.state {
	case ViewCreate:
		return "create"
	case ViewEdit:
		return "edit"
	case ViewDelete:
		return "delete"
	case ViewSearch:
		return "search"
	case ViewHelp:
		return "help"
	default:
		return "browser"
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewCreate:
		return a.create.View()
	case ViewEdit:
		return a.edit.View()
	case ViewDelete:
		return a.delete.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
