package mcp

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricettario/internal/adapters/memory"
	"ricettario/internal/domain"
	"ricettario/internal/logging"
)

func newTestRepo(t *testing.T) *memory.Store {
	t.Helper()

	repo := memory.New(domain.NewClassicClassifier())
	err := repo.Seed(context.Background(),
		domain.Recipe{Name: "Pancakes", CookingTime: 15, Ingredients: []string{"flour", "eggs", "milk"}},
		domain.Recipe{Name: "Omelette", CookingTime: 5, Ingredients: []string{"eggs", "cheese"}},
	)
	require.NoError(t, err)
	return repo
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text, result.IsError
}

func TestListRecipes(t *testing.T) {
	out, isErr := call(t, listRecipesHandler(newTestRepo(t)), nil)
	assert.False(t, isErr)
	assert.Equal(t,
		"1  Pancakes  [Intermediate]  15 min  flour, eggs, milk\n"+
			"2  Omelette  [Easy]  5 min  eggs, cheese\n", out)

	out, _ = call(t, listRecipesHandler(memory.New(domain.NewClassicClassifier())), nil)
	assert.Equal(t, "No recipes.", out)
}

func TestListRecipes_ByName(t *testing.T) {
	h := listRecipesHandler(newTestRepo(t))

	out, isErr := call(t, h, map[string]any{"name": "ome"})
	assert.False(t, isErr)
	assert.Equal(t, "2  Omelette  [Easy]  5 min  eggs, cheese\n", out)

	out, _ = call(t, h, map[string]any{"name": "zzz"})
	assert.Equal(t, `No recipe names match "zzz".`, out)
}

func TestGetRecipe(t *testing.T) {
	h := getRecipeHandler(newTestRepo(t))

	out, isErr := call(t, h, map[string]any{"id": float64(2)})
	assert.False(t, isErr)
	assert.Contains(t, out, "RECIPE: OMELETTE")
	assert.Contains(t, out, "Difficulty:   Easy")

	out, isErr = call(t, h, map[string]any{"id": float64(9)})
	assert.True(t, isErr)
	assert.Contains(t, out, "not found")

	_, isErr = call(t, h, nil)
	assert.True(t, isErr)
}

func TestListIngredients(t *testing.T) {
	out, isErr := call(t, listIngredientsHandler(newTestRepo(t)), nil)
	assert.False(t, isErr)
	assert.Equal(t, "1. flour\n2. eggs\n3. milk\n4. cheese\n", out)
}

func TestSearchRecipes(t *testing.T) {
	h := searchRecipesHandler(newTestRepo(t))

	out, isErr := call(t, h, map[string]any{"ingredients": "eggs"})
	assert.False(t, isErr)
	assert.Contains(t, out, "Pancakes")
	assert.Contains(t, out, "Omelette")

	out, _ = call(t, h, map[string]any{"ingredients": "eggs, cheese"})
	assert.NotContains(t, out, "Pancakes")
	assert.Contains(t, out, "Omelette")

	out, _ = call(t, h, map[string]any{"selection": "1 3"})
	assert.Contains(t, out, "Pancakes")
	assert.NotContains(t, out, "Omelette")

	out, _ = call(t, h, map[string]any{"ingredients": "flour, cheese"})
	assert.Equal(t, "No recipes contain all of the given ingredients.", out)

	_, isErr = call(t, h, map[string]any{"selection": "7"})
	assert.True(t, isErr)

	_, isErr = call(t, h, map[string]any{})
	assert.True(t, isErr)
}

func TestClassify(t *testing.T) {
	h := classifyHandler(domain.NewClassicClassifier())

	tests := []struct {
		time, count float64
		want        string
	}{
		{5, 3, "Easy"},
		{5, 4, "Medium"},
		{12, 2, "Intermediate"},
		{12, 4, "Hard"},
	}
	for _, tt := range tests {
		out, isErr := call(t, h, map[string]any{"cooking_time": tt.time, "ingredient_count": tt.count})
		assert.False(t, isErr)
		assert.Equal(t, tt.want, out, "classify(%v, %v)", tt.time, tt.count)
	}

	_, isErr := call(t, h, map[string]any{"cooking_time": float64(5)})
	assert.True(t, isErr)
}

func TestCreateEditDelete(t *testing.T) {
	repo := newTestRepo(t)
	classifier := domain.NewClassicClassifier()

	out, isErr := call(t, createRecipeHandler(repo, classifier), map[string]any{
		"name":         "Green Tea",
		"cooking_time": float64(4),
		"ingredients":  "water, tea leaves, water",
	})
	require.False(t, isErr, out)
	assert.Equal(t, "Created recipe: 3 Green Tea (Easy)", out)

	r, err := repo.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"water", "tea leaves"}, r.Ingredients)

	out, isErr = call(t, editRecipeHandler(repo, classifier), map[string]any{
		"id": float64(3), "field": "cooking_time", "value": "20",
	})
	require.False(t, isErr, out)
	assert.Equal(t, "Updated cooking_time of recipe 3; difficulty recalculated to Intermediate", out)

	_, isErr = call(t, editRecipeHandler(repo, classifier), map[string]any{
		"id": float64(3), "field": "difficulty", "value": "Easy",
	})
	assert.True(t, isErr)

	out, isErr = call(t, deleteRecipeHandler(repo), map[string]any{"id": float64(3)})
	require.False(t, isErr, out)
	assert.Equal(t, "Deleted recipe 3 Green Tea", out)

	_, isErr = call(t, deleteRecipeHandler(repo), map[string]any{"id": float64(3)})
	assert.True(t, isErr)
}

func TestCreateRecipe_Invalid(t *testing.T) {
	repo := newTestRepo(t)

	out, isErr := call(t, createRecipeHandler(repo, domain.NewClassicClassifier()), map[string]any{
		"name":         "Tea!",
		"cooking_time": float64(4),
		"ingredients":  "water",
	})
	assert.True(t, isErr)
	assert.Contains(t, out, "letters, digits and spaces")

	recipes, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestLogToolCalls(t *testing.T) {
	var buf bytes.Buffer
	orig := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(orig) })

	h := LogToolCalls(getRecipeHandler(newTestRepo(t)))
	req := mcp.CallToolRequest{}
	req.Params.Name = "get_recipe"
	req.Params.Arguments = map[string]any{"id": float64(99)}

	result, err := h(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)

	line := buf.String()
	assert.Contains(t, line, `"tool":"get_recipe"`)
	assert.Contains(t, line, `"level":"warn"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "}"))
}
