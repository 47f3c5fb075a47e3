package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"ricettario/internal/domain"
)

// recipeTx groups the statements of one write.
type recipeTx struct {
	tx      *sql.Tx
	dialect Dialect
}

// exists reports whether a recipe row is present
func (t *recipeTx) exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := t.tx.QueryRowContext(ctx, `SELECT 1 FROM recipes WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// insertRecipe adds a recipe row and returns its ID
func (t *recipeTx) insertRecipe(ctx context.Context, r *domain.Recipe) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO recipes (name, cooking_time, difficulty)
		VALUES (?, ?, ?)
	`, r.Name, r.CookingTime, r.Difficulty.String())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// updateRecipe rewrites the scalar columns of a recipe
func (t *recipeTx) updateRecipe(ctx context.Context, r *domain.Recipe) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE recipes
		SET name = ?, cooking_time = ?, difficulty = ?
		WHERE id = ?
	`, r.Name, r.CookingTime, r.Difficulty.String(), r.ID)
	return err
}

// deleteRecipe removes a recipe row
func (t *recipeTx) deleteRecipe(ctx context.Context, id int64) error {
	_, err := t.tx.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	return err
}

// ingredientID returns the ID of an ingredient, inserting it if needed
func (t *recipeTx) ingredientID(ctx context.Context, name string) (int64, error) {
	if _, err := t.tx.ExecContext(ctx, t.dialect.insertIgnore(), name); err != nil {
		return 0, err
	}
	var id int64
	err := t.tx.QueryRowContext(ctx, `SELECT id FROM ingredients WHERE name = ?`, name).Scan(&id)
	return id, err
}

// replaceIngredients rewrites the ordered ingredient links of a recipe
func (t *recipeTx) replaceIngredients(ctx context.Context, recipeID int64, ingredients []string) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = ?`, recipeID); err != nil {
		return err
	}
	for pos, name := range ingredients {
		ingID, err := t.ingredientID(ctx, name)
		if err != nil {
			return err
		}
		_, err = t.tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, position)
			VALUES (?, ?, ?)
		`, recipeID, ingID, pos)
		if err != nil {
			return err
		}
	}
	return nil
}

// pruneIngredients drops ingredients no recipe references any more
func (t *recipeTx) pruneIngredients(ctx context.Context) error {
	_, err := t.tx.ExecContext(ctx, `
		DELETE FROM ingredients
		WHERE id NOT IN (SELECT ingredient_id FROM recipe_ingredients)
	`)
	return err
}

// Commit commits the transaction
func (t *recipeTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *recipeTx) Rollback() error {
	return t.tx.Rollback()
}
