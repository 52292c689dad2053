package cli

import (
	"fmt"
	"strings"

	"github.com/ajikko/aji/api"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var (
	ingredientsNumber int

	ingredientsCmd = &cobra.Command{
		Use:   "ingredients <ingredient>...",
		Short: "Search recipes by ingredients you have on hand",
		Long: `Search for recipes using a list of ingredients. Ingredients can be given
as separate arguments or comma-separated:

  aji ingredients chicken rice tomatoes
  aji ingredients "chicken, rice, tomatoes"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngredients,
	}

	cuisineNumber   int
	cuisineMealType string

	cuisineCmd = &cobra.Command{
		Use:   "cuisine <name>",
		Short: "Search recipes by cuisine, optionally narrowed by meal type",
		Long: `Search for recipes of a given cuisine (see "aji cuisines" for the list).
Use --type to narrow the search to a meal type, e.g.:

  aji cuisine italian --type dessert`,
		Args: cobra.ExactArgs(1),
		RunE: runCuisine,
	}

	cuisinesCmd = &cobra.Command{
		Use:   "cuisines",
		Short: "List supported cuisines and meal types",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Cuisines:")
			fmt.Printf("  %s\n", strings.Join(api.Cuisines, ", "))
			fmt.Println("Meal types (for --type):")
			fmt.Printf("  %s\n", strings.Join(api.MealTypes, ", "))
		},
	}
)

func init() {
	ingredientsCmd.Flags().IntVarP(&ingredientsNumber, "number", "n", api.DefaultIngredientResults, "Number of results")
	cuisineCmd.Flags().IntVarP(&cuisineNumber, "number", "n", api.DefaultCuisineResults, "Number of results")
	cuisineCmd.Flags().StringVarP(&cuisineMealType, "type", "t", "", "Meal type (e.g. dessert, main course)")
	rootCmd.AddCommand(ingredientsCmd, cuisineCmd, cuisinesCmd)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// splitIngredients normalizes argument lists like ["chicken, rice" "tomatoes"]
func splitIngredients(args []string) []string {
	var out []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func runIngredients(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	ingredients := splitIngredients(args)
	results, err := client.FindByIngredients(cmd.Context(), ingredients, ingredientsNumber)
	if err != nil {
		return err
	}

	title := "Recipes with " + strings.Join(ingredients, ", ")
	return showResults(cmd, client, title, results)
}

func runCuisine(cmd *cobra.Command, args []string) error {
	cuisine := args[0]
	if !api.ValidCuisine(cuisine) {
		return failure.New(InvalidCuisine,
			failure.Message(fmt.Sprintf("Unknown cuisine %q. See `aji cuisines` for the supported list.", cuisine)),
			failure.Context{"cuisine": cuisine},
		)
	}
	if cuisineMealType != "" && !api.ValidMealType(cuisineMealType) {
		return failure.New(InvalidMealType,
			failure.Message(fmt.Sprintf("Unknown meal type %q. See `aji cuisines` for the supported list.", cuisineMealType)),
			failure.Context{"type": cuisineMealType},
		)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	results, err := client.ComplexSearch(cmd.Context(), cuisine, cuisineMealType, cuisineNumber)
	if err != nil {
		return err
	}

	title := capitalize(cuisine) + " recipes"
	if cuisineMealType != "" {
		title += " (" + cuisineMealType + ")"
	}
	return showResults(cmd, client, title, results)
}

// showResults hydrates search results and hands them to the browser or
// the plain printer depending on the terminal
func showResults(cmd *cobra.Command, client *api.Client, title string, results []api.SearchResult) error {
	if len(results) == 0 {
		return failure.New(NoRecipesFound,
			failure.Message("No recipes found. Try different search terms."),
		)
	}

	recipes, err := client.Hydrate(cmd.Context(), results)
	if err != nil {
		return err
	}

	if !interactive() {
		printRecipeList(recipes)
		return nil
	}
	return runBrowse(title, recipes, newStore())
}
