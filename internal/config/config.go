// Package config loads ricettario settings from defaults, an optional YAML
// file and RICETTARIO_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"ricettario/internal/domain"
	"ricettario/internal/logging"
)

// Backend names accepted in store.backend.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMySQL  = "mysql"
	BackendGorm   = "gorm"
)

// Difficulty profiles accepted in difficulty.profile.
const (
	ProfileClassic = "classic"
	ProfileTiered  = "tiered"
)

// DefaultDataDir holds the file and SQLite stores unless store.path is set.
const DefaultDataDir = "~/.ricettario"

// Config is the full application configuration.
type Config struct {
	Store      StoreConfig      `koanf:"store"`
	Difficulty DifficultyConfig `koanf:"difficulty"`
	Log        LogConfig        `koanf:"log"`
	Web        WebConfig        `koanf:"web"`
}

// StoreConfig selects and locates the recipe store.
type StoreConfig struct {
	Backend string `koanf:"backend" validate:"oneof=memory file sqlite mysql gorm"`
	// Path is the blob file or SQLite database. Empty means a file under
	// DefaultDataDir.
	Path string `koanf:"path"`
	// DSN is the MySQL data source name, also used by gorm with driver mysql.
	DSN string `koanf:"dsn"`
	// Driver picks the gorm dialect.
	Driver string `koanf:"driver" validate:"oneof=sqlite mysql"`
}

// DifficultyConfig selects the classifier.
type DifficultyConfig struct {
	Profile        string       `koanf:"profile" validate:"oneof=classic tiered"`
	TimeThreshold  int          `koanf:"time_threshold" validate:"gt=0"`
	CountThreshold int          `koanf:"count_threshold" validate:"gt=0"`
	Tiered         TieredConfig `koanf:"tiered"`
}

// TieredConfig holds the limits of the tiered profile.
type TieredConfig struct {
	EasyTime    int `koanf:"easy_time" validate:"gt=0"`
	MediumTime  int `koanf:"medium_time" validate:"gtefield=EasyTime"`
	EasyCount   int `koanf:"easy_count" validate:"gt=0"`
	MediumCount int `koanf:"medium_count" validate:"gtefield=EasyCount"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// WebConfig configures the web front-end.
type WebConfig struct {
	Addr string `koanf:"addr" validate:"required"`
}

// Default returns the built-in configuration.
func Default() *Config {
	tiered := domain.NewTieredClassifier()
	return &Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Driver:  BackendSQLite,
		},
		Difficulty: DifficultyConfig{
			Profile:        ProfileClassic,
			TimeThreshold:  domain.DefaultTimeThreshold,
			CountThreshold: domain.DefaultCountThreshold,
			Tiered: TieredConfig{
				EasyTime:    tiered.EasyTime,
				MediumTime:  tiered.MediumTime,
				EasyCount:   tiered.EasyCount,
				MediumCount: tiered.MediumCount,
			},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Web: WebConfig{
			Addr: "127.0.0.1:8000",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid %s: %v (rule %s %s)", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
		}
		return err
	}

	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}

	if c.Store.Backend == BackendMySQL || (c.Store.Backend == BackendGorm && c.Store.Driver == BackendMySQL) {
		if strings.TrimSpace(c.Store.DSN) == "" {
			return fmt.Errorf("store.dsn is required for the %s backend", c.Store.Backend)
		}
	}
	return nil
}

// Classifier builds the classifier for the selected profile.
func (c *Config) Classifier() domain.Classifier {
	d := c.Difficulty
	if d.Profile == ProfileTiered {
		return domain.TieredClassifier{
			EasyTime:    d.Tiered.EasyTime,
			MediumTime:  d.Tiered.MediumTime,
			EasyCount:   d.Tiered.EasyCount,
			MediumCount: d.Tiered.MediumCount,
		}
	}
	return domain.QuadrantClassifier{Time: d.TimeThreshold, Count: d.CountThreshold}
}

// StorePath returns the expanded store location for file-based backends.
func (c *Config) StorePath() (string, error) {
	path := c.Store.Path
	if path == "" {
		name := "recipes.json"
		if c.Store.Backend == BackendSQLite || c.Store.Backend == BackendGorm {
			name = "recipes.db"
		}
		path = filepath.Join(DefaultDataDir, name)
	}
	return ExpandHome(path)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
