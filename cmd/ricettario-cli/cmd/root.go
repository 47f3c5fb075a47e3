package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ricettario/internal/adapters/storage"
	"ricettario/internal/config"
	"ricettario/internal/domain"
	"ricettario/internal/logging"
	"ricettario/internal/ports"
)

var (
	configPath string
	backend    string
	storePath  string
	profile    string

	cfg        *config.Config
	repo       ports.RecipeRepository
	classifier domain.Classifier
)

var rootCmd = &cobra.Command{
	Use:   "ricettario-cli",
	Short: "CLI for managing recipes",
	Long: `ricettario-cli keeps a collection of recipes, grades each one by
cooking time and ingredient count, and finds recipes that use every
ingredient you pick.

Recipes live in the store selected by the configuration: memory, a JSON
file, SQLite, MySQL or GORM.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if backend != "" {
			loaded.Store.Backend = backend
		}
		if storePath != "" {
			loaded.Store.Path = storePath
		}
		if profile != "" {
			loaded.Difficulty.Profile = profile
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

		classifier = cfg.Classifier()
		repo, err = storage.Open(cmd.Context(), cfg, classifier)
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnFinalize(closeRepo)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", "", "store backend: memory, file, sqlite, mysql or gorm")
	rootCmd.PersistentFlags().StringVarP(&storePath, "store-path", "s", "", "recipe file or SQLite database path")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "difficulty profile: classic or tiered")
}

func closeRepo() {
	if repo == nil {
		return
	}
	if err := repo.Close(); err != nil {
		logging.Warn().Err(err).Msg("failed to close recipe store")
	}
	repo = nil
}

// GetRepo returns the initialized repository
func GetRepo() ports.RecipeRepository {
	return repo
}

// GetClassifier returns the classifier of the active difficulty profile
func GetClassifier() domain.Classifier {
	return classifier
}
