package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ricettario/internal/adapters/console"
	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// RegisterReadTools adds all read-only recipe tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.RecipeRepository, classifier domain.Classifier) {
	s.AddTool(listRecipesTool(), listRecipesHandler(repo))
	s.AddTool(getRecipeTool(), getRecipeHandler(repo))
	s.AddTool(listIngredientsTool(), listIngredientsHandler(repo))
	s.AddTool(searchRecipesTool(), searchRecipesHandler(repo))
	s.AddTool(classifyTool(), classifyHandler(classifier))
}

// --- list_recipes ---

func listRecipesTool() mcp.Tool {
	return mcp.NewTool("list_recipes",
		mcp.WithDescription("List every recipe as one line: ID, name, difficulty, cooking time and ingredients."),
		mcp.WithString("name",
			mcp.Description("Optional fuzzy name filter; matches are ranked best first"),
		),
	)
}

func listRecipesHandler(repo ports.RecipeRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		recipes, err := commands.NewListRecipesCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if name := strings.TrimSpace(req.GetString("name", "")); name != "" {
			scored := commands.FilterByName(recipes, name)
			recipes = make([]domain.Recipe, len(scored))
			for i, sr := range scored {
				recipes[i] = sr.Recipe
			}
			return formatRecipes(recipes, fmt.Sprintf("No recipe names match %q.", name))
		}
		return formatRecipes(recipes, "No recipes.")
	}
}

// --- get_recipe ---

func getRecipeTool() mcp.Tool {
	return mcp.NewTool("get_recipe",
		mcp.WithDescription("Show one recipe in full by its ID."),
		mcp.WithNumber("id",
			mcp.Description("Recipe ID"),
			mcp.Required(),
		),
	)
}

func getRecipeHandler(repo ports.RecipeRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := int64(req.GetInt("id", 0))

		recipe, err := commands.NewGetRecipeCommand(repo, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(console.FormatRecipe(*recipe)), nil
	}
}

// --- list_ingredients ---

func listIngredientsTool() mcp.Tool {
	return mcp.NewTool("list_ingredients",
		mcp.WithDescription("List the ingredient catalog, numbered in first-seen order."),
	)
}

func listIngredientsHandler(repo ports.RecipeRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		catalog, err := commands.NewListIngredientsCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(catalog) == 0 {
			return mcp.NewToolResultText("No ingredients."), nil
		}
		var sb strings.Builder
		console.WriteCatalog(&sb, catalog)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search_recipes ---

func searchRecipesTool() mcp.Tool {
	return mcp.NewTool("search_recipes",
		mcp.WithDescription("Find recipes that contain ALL of the given ingredients (exact, case-sensitive names)."),
		mcp.WithString("ingredients",
			mcp.Description("Comma-separated ingredient names, e.g. \"eggs, milk\""),
		),
		mcp.WithString("selection",
			mcp.Description("Alternatively, catalog numbers from list_ingredients, e.g. \"1 3\""),
		),
	)
}

func searchRecipesHandler(repo ports.RecipeRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ingredients := domain.ParseIngredientList(req.GetString("ingredients", ""))

		if selection := req.GetString("selection", ""); selection != "" {
			picked, err := commands.NewSelectIngredientsCommand(repo, selection).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			ingredients = append(ingredients, picked...)
		}

		results, err := commands.NewSearchByIngredientsCommand(repo, ingredients...).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatRecipes(results, "No recipes contain all of the given ingredients.")
	}
}

// --- classify ---

func classifyTool() mcp.Tool {
	return mcp.NewTool("classify",
		mcp.WithDescription("Compute the difficulty for a cooking time and ingredient count without storing anything."),
		mcp.WithNumber("cooking_time",
			mcp.Description("Cooking time in minutes"),
			mcp.Required(),
		),
		mcp.WithNumber("ingredient_count",
			mcp.Description("Number of ingredients"),
			mcp.Required(),
		),
	)
}

func classifyHandler(classifier domain.Classifier) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		minutes, err := req.RequireInt("cooking_time")
		if err != nil {
			return toolError(err)
		}
		count, err := req.RequireInt("ingredient_count")
		if err != nil {
			return toolError(err)
		}

		d := commands.NewClassifyCommand(classifier, minutes, count).Execute(ctx)
		return mcp.NewToolResultText(d.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatRecipes(recipes []domain.Recipe, empty string) (*mcp.CallToolResult, error) {
	if len(recipes) == 0 {
		return mcp.NewToolResultText(empty), nil
	}
	var sb strings.Builder
	for _, r := range recipes {
		fmt.Fprintf(&sb, "%d  %s  [%s]  %d min  %s\n",
			r.ID, r.Name, r.Difficulty, r.CookingTime, domain.FormatIngredientList(r.Ingredients))
	}
	return mcp.NewToolResultText(sb.String()), nil
}
