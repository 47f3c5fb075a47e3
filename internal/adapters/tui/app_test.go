package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ricettario/internal/adapters/memory"
	"ricettario/internal/adapters/tui/views"
	"ricettario/internal/domain"
)

func newTestApp(t *testing.T) (*App, *memory.Store) {
	t.Helper()

	repo := memory.New(domain.NewClassicClassifier())
	err := repo.Seed(context.Background(),
		domain.Recipe{Name: "Pancakes", CookingTime: 15, Ingredients: []string{"flour", "eggs", "milk"}},
		domain.Recipe{Name: "Omelette", CookingTime: 5, Ingredients: []string{"eggs", "cheese"}},
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	app := NewApp(repo, domain.NewClassicClassifier())
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app.Update(app.Init()())
	return app, repo
}

// send delivers msg and then feeds back the message produced by the
// returned command, following view switches until the app settles.
func send(a *App, msg tea.Msg) {
	for i := 0; i < 4 && msg != nil; i++ {
		_, cmd := a.Update(msg)
		msg = nil
		if cmd == nil {
			return
		}
		next := cmd()
		switch next.(type) {
		case views.SwitchToCreateMsg, views.SwitchToEditMsg, views.SwitchToDeleteMsg,
			views.SwitchToSearchMsg, views.SwitchToHelpMsg, views.SwitchToBrowserMsg,
			views.ActionDoneMsg, views.ActionErrMsg:
			msg = next
		default:
			// data loads are delivered once
			a.Update(next)
		}
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_CreateFlow(t *testing.T) {
	app, repo := newTestApp(t)

	send(app, key("n"))
	if app.State() != ViewCreate {
		t.Fatalf("expected create view, got %d", app.State())
	}

	app.Update(key("Toast"))
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(key("3"))
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(key("bread, butter"))
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	if app.State() != ViewBrowser {
		t.Fatalf("expected browser after create, got %d", app.State())
	}
	if !strings.Contains(app.View(), "Created recipe: 3 Toast (Easy)") {
		t.Errorf("expected success message in view:\n%s", app.View())
	}

	recipes, _ := repo.List(context.Background())
	if len(recipes) != 3 {
		t.Errorf("expected 3 recipes, got %d", len(recipes))
	}
}

func TestApp_CreateErrorStaysOnForm(t *testing.T) {
	app, _ := newTestApp(t)

	send(app, key("n"))
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	if app.State() != ViewCreate {
		t.Fatalf("expected to stay on create view, got %d", app.State())
	}
	if !strings.Contains(app.View(), "cooking time should be a number") {
		t.Errorf("expected error in view:\n%s", app.View())
	}

	send(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.State() != ViewBrowser {
		t.Errorf("esc should return to browser, got %d", app.State())
	}
}

func TestApp_EditAndDelete(t *testing.T) {
	app, repo := newTestApp(t)

	send(app, key("j"))
	send(app, key("e"))
	if app.State() != ViewEdit {
		t.Fatalf("expected edit view, got %d", app.State())
	}
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	app.Update(key("French Omelette"))
	send(app, tea.KeyMsg{Type: tea.KeyEnter})

	r, err := repo.Get(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "French Omelette" {
		t.Errorf("expected renamed recipe, got %q", r.Name)
	}

	send(app, key("d"))
	if app.State() != ViewDelete {
		t.Fatalf("expected delete view, got %d", app.State())
	}
	send(app, key("y"))
	if app.State() != ViewBrowser {
		t.Fatalf("expected browser after delete, got %d", app.State())
	}
	if _, err := repo.Get(context.Background(), 2); err == nil {
		t.Error("expected recipe 2 to be deleted")
	}
}

func TestApp_SearchAndHelp(t *testing.T) {
	app, _ := newTestApp(t)

	send(app, key("/"))
	if app.State() != ViewSearch {
		t.Fatalf("expected search view, got %d", app.State())
	}
	if !strings.Contains(app.View(), "cheese") {
		t.Error("expected catalog in search view")
	}
	send(app, tea.KeyMsg{Type: tea.KeyEsc})

	send(app, key("?"))
	if app.State() != ViewHelp {
		t.Fatalf("expected help view, got %d", app.State())
	}
	if !strings.Contains(app.View(), "classic") {
		t.Error("help should describe the active classifier")
	}
	send(app, key("?"))
	if app.State() != ViewBrowser {
		t.Errorf("expected browser, got %d", app.State())
	}
}
