// Package sqlstore keeps recipes in normalized SQL tables through
// database/sql. SQLite and MySQL share the same queries.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// Compile-time interface check.
var _ ports.RecipeRepository = (*Store)(nil)

// Store implements ports.RecipeRepository on a *sql.DB.
type Store struct {
	db         *sql.DB
	dialect    Dialect
	classifier domain.Classifier
}

// Open connects to the database and creates the schema if needed. For
// SQLite the dsn is a file path.
func Open(ctx context.Context, dialect Dialect, dsn string, classifier domain.Classifier) (*Store, error) {
	if dialect == DialectSQLite {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	normalized, err := dialect.normalizeDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.driverName(), normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dialect == DialectSQLite {
		// One writer at a time avoids SQLITE_BUSY between pooled connections.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, stmt := range dialect.schema() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to setup database: %w", err)
		}
	}

	return &Store{db: db, dialect: dialect, classifier: classifier}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) begin(ctx context.Context) (*recipeTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &recipeTx{tx: tx, dialect: s.dialect}, nil
}

// withTx runs fn in a transaction and commits when it returns nil.
func (s *Store) withTx(ctx context.Context, fn func(tx *recipeTx) error) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// List returns every recipe ordered by ID.
func (s *Store) List(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, cooking_time, difficulty
		FROM recipes
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	byID := make(map[int64]int)
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		byID[r.ID] = len(recipes)
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	links, err := s.db.QueryContext(ctx, `
		SELECT ri.recipe_id, i.name
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		ORDER BY ri.recipe_id, ri.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer links.Close()

	for links.Next() {
		var (
			recipeID int64
			name     string
		)
		if err := links.Scan(&recipeID, &name); err != nil {
			return nil, err
		}
		if i, ok := byID[recipeID]; ok {
			recipes[i].Ingredients = append(recipes[i].Ingredients, name)
		}
	}
	if err := links.Err(); err != nil {
		return nil, err
	}

	for i := range recipes {
		s.recalculate(&recipes[i])
	}
	return recipes, nil
}

// Get returns a recipe by ID.
func (s *Store) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, cooking_time, difficulty
		FROM recipes
		WHERE id = ?
	`, id)
	r, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT i.name
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ?
		ORDER BY ri.position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients of recipe %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		r.Ingredients = append(r.Ingredients, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.recalculate(&r)
	return &r, nil
}

// Create inserts the recipe and its ingredient links in one transaction.
func (s *Store) Create(ctx context.Context, recipe *domain.Recipe) error {
	return s.withTx(ctx, func(tx *recipeTx) error {
		id, err := tx.insertRecipe(ctx, recipe)
		if err != nil {
			return fmt.Errorf("failed to insert recipe: %w", err)
		}
		if err := tx.replaceIngredients(ctx, id, recipe.Ingredients); err != nil {
			return fmt.Errorf("failed to link ingredients: %w", err)
		}
		recipe.ID = id
		return nil
	})
}

// Update rewrites the recipe and its ingredient links in one transaction.
func (s *Store) Update(ctx context.Context, recipe *domain.Recipe) error {
	return s.withTx(ctx, func(tx *recipeTx) error {
		ok, err := tx.exists(ctx, recipe.ID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		if err := tx.updateRecipe(ctx, recipe); err != nil {
			return fmt.Errorf("failed to update recipe %d: %w", recipe.ID, err)
		}
		if err := tx.replaceIngredients(ctx, recipe.ID, recipe.Ingredients); err != nil {
			return fmt.Errorf("failed to link ingredients: %w", err)
		}
		return tx.pruneIngredients(ctx)
	})
}

// Delete removes the recipe, its links and any ingredient left unused.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *recipeTx) error {
		ok, err := tx.exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		if err := tx.replaceIngredients(ctx, id, nil); err != nil {
			return err
		}
		if err := tx.deleteRecipe(ctx, id); err != nil {
			return fmt.Errorf("failed to delete recipe %d: %w", id, err)
		}
		return tx.pruneIngredients(ctx)
	})
}

// Ingredients returns the catalog in first-seen order across recipes.
func (s *Store) Ingredients(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.name
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		ORDER BY ri.recipe_id, ri.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	catalog := domain.NewCatalog()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		catalog.Register(name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog.Enumerate(), nil
}

func (s *Store) recalculate(r *domain.Recipe) {
	if s.classifier != nil {
		r.Recalculate(s.classifier)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row scanner) (domain.Recipe, error) {
	var (
		r          domain.Recipe
		difficulty string
	)
	if err := row.Scan(&r.ID, &r.Name, &r.CookingTime, &difficulty); err != nil {
		return r, err
	}
	r.Difficulty = domain.ParseDifficulty(difficulty)
	return r, nil
}
