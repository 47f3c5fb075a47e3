// Package ormstore keeps recipes in the normalized schema through GORM.
package ormstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"ricettario/internal/domain"
	"ricettario/internal/logging"
	"ricettario/internal/ports"
)

// Compile-time interface check.
var _ ports.RecipeRepository = (*Store)(nil)

// Store implements ports.RecipeRepository on a *gorm.DB.
type Store struct {
	db         *gorm.DB
	classifier domain.Classifier
}

// Open connects with the named driver ("sqlite" or "mysql") and migrates the
// schema. For sqlite the dsn is a file path or a "file:" URI.
func Open(ctx context.Context, driver, dsn string, classifier domain.Classifier) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		if !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown gorm driver %q", driver)
	}

	gormLog := gormLogger.New(
		logging.PrintfWriter{Component: "gorm", Level: zerolog.WarnLevel},
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s handle: %w", driver, err)
	}
	if driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	}

	migrator := db.WithContext(ctx)
	if opts := tableOptions(driver); opts != "" {
		migrator = migrator.Set("gorm:table_options", opts)
	}
	if err := migrator.AutoMigrate(&RecipeModel{}, &IngredientModel{}, &RecipeIngredientModel{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{db: db, classifier: classifier}, nil
}

// tableOptions returns the CREATE TABLE suffix for driver. MySQL tables use a
// binary collation so ingredient names compare and stay unique case-sensitively.
func tableOptions(driver string) string {
	if driver == "mysql" {
		return "DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin"
	}
	return ""
}

// DB exposes the underlying handle.
func (s *Store) DB() *gorm.DB { return s.db }

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) preloaded(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Links", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Links.Ingredient")
}

func (s *Store) load(m *RecipeModel) domain.Recipe {
	r := m.toDomain()
	if s.classifier != nil {
		r.Recalculate(s.classifier)
	}
	return r
}

// List returns every recipe ordered by ID.
func (s *Store) List(ctx context.Context) ([]domain.Recipe, error) {
	var models []RecipeModel
	if err := s.preloaded(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	out := make([]domain.Recipe, len(models))
	for i := range models {
		out[i] = s.load(&models[i])
	}
	return out, nil
}

// Get returns a recipe by ID.
func (s *Store) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	var m RecipeModel
	err := s.preloaded(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}
	r := s.load(&m)
	return &r, nil
}

// Create inserts the recipe and its links in one transaction.
func (s *Store) Create(ctx context.Context, recipe *domain.Recipe) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := RecipeModel{
			Name:        recipe.Name,
			CookingTime: recipe.CookingTime,
			Difficulty:  recipe.Difficulty.String(),
		}
		if err := tx.Omit("Links").Create(&m).Error; err != nil {
			return fmt.Errorf("failed to insert recipe: %w", err)
		}
		if err := linkIngredients(tx, m.ID, recipe.Ingredients); err != nil {
			return err
		}
		recipe.ID = m.ID
		return nil
	})
}

// Update rewrites the recipe and its links in one transaction.
func (s *Store) Update(ctx context.Context, recipe *domain.Recipe) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, recipe.ID); err != nil {
			return err
		}
		err := tx.Model(&RecipeModel{ID: recipe.ID}).Updates(map[string]any{
			"name":         recipe.Name,
			"cooking_time": recipe.CookingTime,
			"difficulty":   recipe.Difficulty.String(),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update recipe %d: %w", recipe.ID, err)
		}
		if err := unlinkIngredients(tx, recipe.ID); err != nil {
			return err
		}
		if err := linkIngredients(tx, recipe.ID, recipe.Ingredients); err != nil {
			return err
		}
		return pruneIngredients(tx)
	})
}

// Delete removes the recipe, its links and unused ingredients.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, id); err != nil {
			return err
		}
		if err := unlinkIngredients(tx, id); err != nil {
			return err
		}
		if err := tx.Delete(&RecipeModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete recipe %d: %w", id, err)
		}
		return pruneIngredients(tx)
	})
}

// Ingredients returns the catalog in first-seen order across recipes.
func (s *Store) Ingredients(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Table("recipe_ingredients AS ri").
		Joins("JOIN ingredients AS i ON i.id = ri.ingredient_id").
		Order("ri.recipe_id, ri.position").
		Pluck("i.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	catalog := domain.NewCatalog()
	catalog.RegisterAll(names...)
	return catalog.Enumerate(), nil
}

func ensureExists(tx *gorm.DB, id int64) error {
	var count int64
	if err := tx.Model(&RecipeModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func linkIngredients(tx *gorm.DB, recipeID int64, ingredients []string) error {
	for pos, name := range ingredients {
		ing := IngredientModel{Name: name}
		if err := tx.Where(IngredientModel{Name: name}).FirstOrCreate(&ing).Error; err != nil {
			return fmt.Errorf("failed to store ingredient %q: %w", name, err)
		}
		link := RecipeIngredientModel{RecipeID: recipeID, Position: pos + 1, IngredientID: ing.ID}
		if err := tx.Omit("Ingredient").Create(&link).Error; err != nil {
			return fmt.Errorf("failed to link ingredient %q: %w", name, err)
		}
	}
	return nil
}

func unlinkIngredients(tx *gorm.DB, recipeID int64) error {
	return tx.Where("recipe_id = ?", recipeID).Delete(&RecipeIngredientModel{}).Error
}

func pruneIngredients(tx *gorm.DB) error {
	used := tx.Model(&RecipeIngredientModel{}).Select("ingredient_id")
	return tx.Where("id NOT IN (?)", used).Delete(&IngredientModel{}).Error
}
