package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ricettario/internal/application"
	"ricettario/internal/application/commands"
	"ricettario/internal/domain"
	"ricettario/internal/ports"
)

// RegisterWriteTools adds the tools that change recipes to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.RecipeRepository, classifier domain.Classifier) {
	s.AddTool(createRecipeTool(), createRecipeHandler(repo, classifier))
	s.AddTool(editRecipeTool(), editRecipeHandler(repo, classifier))
	s.AddTool(deleteRecipeTool(), deleteRecipeHandler(repo))
}

// --- create_recipe ---

func createRecipeTool() mcp.Tool {
	return mcp.NewTool("create_recipe",
		mcp.WithDescription("Create a recipe. Difficulty is computed from cooking time and ingredient count."),
		mcp.WithString("name",
			mcp.Description("Recipe name: letters, digits and spaces, at most 50 characters"),
			mcp.Required(),
		),
		mcp.WithNumber("cooking_time",
			mcp.Description("Cooking time in minutes, greater than zero"),
			mcp.Required(),
		),
		mcp.WithString("ingredients",
			mcp.Description("Comma-separated ingredients: letters and spaces only. Duplicates are dropped."),
			mcp.Required(),
		),
	)
}

func createRecipeHandler(repo ports.RecipeRepository, classifier domain.Classifier) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		minutes := req.GetInt("cooking_time", 0)
		ingredients := domain.ParseIngredientList(req.GetString("ingredients", ""))

		cmd := commands.NewCreateRecipeCommand(repo, classifier, name, minutes, ingredients)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- edit_recipe ---

func editRecipeTool() mcp.Tool {
	return mcp.NewTool("edit_recipe",
		mcp.WithDescription("Change one field of a recipe. Editing cooking_time or ingredients recomputes the difficulty."),
		mcp.WithNumber("id",
			mcp.Description("Recipe ID"),
			mcp.Required(),
		),
		mcp.WithString("field",
			mcp.Description("Field to change"),
			mcp.Enum("name", "cooking_time", "ingredients"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("New value; ingredients are comma-separated"),
			mcp.Required(),
		),
	)
}

func editRecipeHandler(repo ports.RecipeRepository, classifier domain.Classifier) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := int64(req.GetInt("id", 0))
		field, err := application.ParseEditField(req.GetString("field", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewEditRecipeCommand(repo, classifier, id, field, req.GetString("value", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_recipe ---

func deleteRecipeTool() mcp.Tool {
	return mcp.NewTool("delete_recipe",
		mcp.WithDescription("Delete a recipe permanently. Ingredients used by no other recipe leave the catalog."),
		mcp.WithNumber("id",
			mcp.Description("Recipe ID"),
			mcp.Required(),
		),
	)
}

func deleteRecipeHandler(repo ports.RecipeRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := int64(req.GetInt("id", 0))

		result, err := commands.NewDeleteRecipeCommand(repo, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
