package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ajikko/aji/api"
	"github.com/ajikko/aji/favorites"
	"github.com/ajikko/aji/recipe"
	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

func InitTools(client *api.Client, store *favorites.Store) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(SearchRecipes(client)))
	tools = append(tools, newServerTool(GetRecipe(client)))
	tools = append(tools, newServerTool(ListFavorites(store)))

	return tools
}

// recipeSummary is the compact recipe representation returned by tools
type recipeSummary struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Difficulty  string   `json:"difficulty"`
	Likes       int      `json:"likes"`
	Minutes     int      `json:"ready_in_minutes,omitempty"`
	Ingredients int      `json:"ingredient_count"`
	Cuisines    []string `json:"cuisines,omitempty"`
	SourceURL   string   `json:"source_url,omitempty"`
}

func summarize(r api.Recipe) recipeSummary {
	return recipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		Difficulty:  string(recipe.Grade(r)),
		Likes:       r.AggregateLikes,
		Minutes:     r.ReadyInMinutes,
		Ingredients: r.IngredientCount(),
		Cuisines:    r.Cuisines,
		SourceURL:   r.SourceURL,
	}
}

func summaryResult(recipes []api.Recipe) (*mcp.CallToolResult, error) {
	recipe.SortByDifficulty(recipes)
	summaries := make([]recipeSummary, len(recipes))
	for i, r := range recipes {
		summaries[i] = summarize(r)
	}

	b, err := json.Marshal(summaries)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func SearchRecipes(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"search_recipes",
			mcp.WithDescription("Search recipes by ingredients or by cuisine"),
			mcp.WithString("ingredients", mcp.Description("Comma-separated ingredient list")),
			mcp.WithString("cuisine", mcp.Description("Cuisine name (e.g. italian, thai)")),
			mcp.WithString("meal_type", mcp.Description("Meal type to narrow a cuisine search")),
			mcp.WithNumber("number", mcp.Description("Number of results")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Ingredients string `json:"ingredients" validate:"required_without=Cuisine"`
				Cuisine     string `json:"cuisine" validate:"required_without=Ingredients"`
				MealType    string `json:"meal_type" validate:"omitempty"`
				Number      int    `json:"number" validate:"omitempty,min=1,max=25"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			var results []api.SearchResult
			var err error
			if args.Ingredients != "" {
				results, err = client.FindByIngredients(ctx, splitList(args.Ingredients), args.Number)
			} else {
				results, err = client.ComplexSearch(ctx, args.Cuisine, args.MealType, args.Number)
			}
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			recipes, err := client.Hydrate(ctx, results)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return summaryResult(recipes)
		}
}

func GetRecipe(client *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_recipe",
			mcp.WithDescription("Fetch full recipe details including ingredients, instructions, and nutrition"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Recipe ID")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				ID int `json:"id" validate:"required,min=1"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			r, err := client.GetRecipe(ctx, args.ID)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(recipe.Markdown(*r)), nil
		}
}

func ListFavorites(store *favorites.Store) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_favorites",
			mcp.WithDescription("List the user's saved favorite recipes"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			recipes, err := store.Load()
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return summaryResult(recipes)
		}
}
