package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ricettario/internal/adapters/storage"
	"ricettario/internal/adapters/tui"
	"ricettario/internal/config"
	"ricettario/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to a YAML config file")
	backendFlag := flag.String("backend", "", "store backend: memory, file, sqlite, mysql or gorm")
	flag.Parse()

	if err := run(*configFlag, *backendFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, backend string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if backend != "" {
		cfg.Store.Backend = backend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	classifier := cfg.Classifier()
	repo, err := storage.Open(context.Background(), cfg, classifier)
	if err != nil {
		return err
	}
	defer repo.Close()

	app := tui.NewApp(repo, classifier)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
