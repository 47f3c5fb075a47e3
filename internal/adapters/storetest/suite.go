// Package storetest holds the behaviour every ports.RecipeRepository
// implementation must share. Backend packages call Run from their tests.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// Factory opens an empty repository that classifies with the classic
// profile. Cleanup is the factory's job.
type Factory func(t *testing.T) ports.RecipeRepository

// Run executes the shared repository tests against repositories produced by
// newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Run("EmptyStore", func(t *testing.T) { testEmptyStore(t, newRepo(t)) })
	t.Run("CreateAssignsIDs", func(t *testing.T) { testCreateAssignsIDs(t, newRepo(t)) })
	t.Run("GetRecalculatesDifficulty", func(t *testing.T) { testGetRecalculates(t, newRepo(t)) })
	t.Run("UpdateThenRead", func(t *testing.T) { testUpdateThenRead(t, newRepo(t)) })
	t.Run("UpdateUnknown", func(t *testing.T) { testUpdateUnknown(t, newRepo(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newRepo(t)) })
	t.Run("IngredientCatalog", func(t *testing.T) { testIngredientCatalog(t, newRepo(t)) })
	t.Run("IngredientsAreCaseSensitive", func(t *testing.T) { testIngredientCase(t, newRepo(t)) })
	t.Run("ReturnedRecipesAreCopies", func(t *testing.T) { testReturnedCopies(t, newRepo(t)) })
}

func pancakes() domain.Recipe {
	return domain.Recipe{Name: "Pancakes", CookingTime: 15, Ingredients: []string{"flour", "eggs", "milk"}}
}

func omelette() domain.Recipe {
	return domain.Recipe{Name: "Omelette", CookingTime: 5, Ingredients: []string{"eggs", "cheese"}}
}

func create(t *testing.T, repo ports.RecipeRepository, r domain.Recipe) domain.Recipe {
	t.Helper()
	r.Recalculate(domain.NewClassicClassifier())
	require.NoError(t, repo.Create(context.Background(), &r))
	require.NotZero(t, r.ID)
	return r
}

func testEmptyStore(t *testing.T, repo ports.RecipeRepository) {
	ctx := context.Background()

	recipes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	catalog, err := repo.Ingredients(ctx)
	require.NoError(t, err)
	assert.Empty(t, catalog)

	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testCreateAssignsIDs(t *testing.T, repo ports.RecipeRepository) {
	first := create(t, repo, pancakes())
	second := create(t, repo, omelette())

	assert.Greater(t, second.ID, first.ID)

	recipes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, first.ID, recipes[0].ID)
	assert.Equal(t, "Pancakes", recipes[0].Name)
	assert.Equal(t, 15, recipes[0].CookingTime)
	assert.Equal(t, []string{"flour", "eggs", "milk"}, recipes[0].Ingredients)
	assert.Equal(t, second.ID, recipes[1].ID)
}

func testGetRecalculates(t *testing.T, repo ports.RecipeRepository) {
	r := pancakes()
	r.Difficulty = domain.DifficultyEasy // stale on purpose
	require.NoError(t, repo.Create(context.Background(), &r))

	got, err := repo.Get(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyIntermediate, got.Difficulty)
}

func testUpdateThenRead(t *testing.T, repo ports.RecipeRepository) {
	ctx := context.Background()
	r := create(t, repo, omelette())

	r.Name = "Cheese Omelette"
	r.CookingTime = 12
	r.Ingredients = []string{"eggs", "cheese", "chives", "butter"}
	r.Recalculate(domain.NewClassicClassifier())
	require.NoError(t, repo.Update(ctx, &r))

	got, err := repo.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cheese Omelette", got.Name)
	assert.Equal(t, 12, got.CookingTime)
	assert.Equal(t, []string{"eggs", "cheese", "chives", "butter"}, got.Ingredients)
	assert.Equal(t, domain.DifficultyHard, got.Difficulty)

	catalog, err := repo.Ingredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"eggs", "cheese", "chives", "butter"}, catalog)
}

func testUpdateUnknown(t *testing.T, repo ports.RecipeRepository) {
	r := pancakes()
	r.ID = 404
	assert.ErrorIs(t, repo.Update(context.Background(), &r), domain.ErrNotFound)
}

func testDelete(t *testing.T, repo ports.RecipeRepository) {
	ctx := context.Background()
	first := create(t, repo, pancakes())
	second := create(t, repo, omelette())

	require.NoError(t, repo.Delete(ctx, first.ID))

	_, err := repo.Get(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), domain.ErrNotFound)

	recipes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, second.ID, recipes[0].ID)

	catalog, err := repo.Ingredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"eggs", "cheese"}, catalog)
}

func testIngredientCatalog(t *testing.T, repo ports.RecipeRepository) {
	create(t, repo, pancakes())
	create(t, repo, omelette())
	create(t, repo, domain.Recipe{Name: "Quiche", CookingTime: 45, Ingredients: []string{"flour", "eggs", "milk", "cheese", "spinach"}})

	catalog, err := repo.Ingredients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"flour", "eggs", "milk", "cheese", "spinach"}, catalog)
}

func testIngredientCase(t *testing.T, repo ports.RecipeRepository) {
	ctx := context.Background()
	create(t, repo, domain.Recipe{Name: "Bread", CookingTime: 60, Ingredients: []string{"flour", "water"}})
	cake := create(t, repo, domain.Recipe{Name: "Cake", CookingTime: 40, Ingredients: []string{"Flour", "sugar"}})

	catalog, err := repo.Ingredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"flour", "water", "Flour", "sugar"}, catalog)

	got, err := repo.Get(ctx, cake.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Flour", "sugar"}, got.Ingredients)
}

func testReturnedCopies(t *testing.T, repo ports.RecipeRepository) {
	ctx := context.Background()
	r := create(t, repo, pancakes())

	got, err := repo.Get(ctx, r.ID)
	require.NoError(t, err)
	got.Ingredients[0] = "rye"
	got.Name = "Changed"

	again, err := repo.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", again.Name)
	assert.Equal(t, "flour", again.Ingredients[0])
}
