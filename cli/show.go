package cli

import (
	"github.com/ajikko/aji/recipe"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show full details for a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseRecipeID(args[0])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	r, err := client.GetRecipe(cmd.Context(), id)
	if err != nil {
		return err
	}

	return showDocument(recipe.Markdown(*r))
}
