package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	favCmd = &cobra.Command{
		Use:   "fav",
		Short: "Manage favorite recipes",
		RunE:  runFavList,
	}

	favListCmd = &cobra.Command{
		Use:   "list",
		Short: "List favorite recipes",
		RunE:  runFavList,
	}

	favAddCmd = &cobra.Command{
		Use:   "add <id>",
		Short: "Save a recipe to favorites",
		Args:  cobra.ExactArgs(1),
		RunE:  runFavAdd,
	}

	favRemoveCmd = &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a recipe from favorites",
		Args:    cobra.ExactArgs(1),
		RunE:    runFavRemove,
	}
)

func init() {
	favCmd.AddCommand(favListCmd, favAddCmd, favRemoveCmd)
	rootCmd.AddCommand(favCmd)
}

func runFavList(cmd *cobra.Command, args []string) error {
	store := newStore()

	recipes, err := store.Load()
	if err != nil {
		return err
	}
	if len(recipes) == 0 {
		fmt.Println("You have no favorite recipes yet.")
		return nil
	}

	if !interactive() {
		printRecipeList(recipes)
		return nil
	}
	return runBrowse("Favorite recipes", recipes, store)
}

func runFavAdd(cmd *cobra.Command, args []string) error {
	id, err := parseRecipeID(args[0])
	if err != nil {
		return err
	}

	store := newStore()
	if saved, err := store.Contains(id); err != nil {
		return err
	} else if saved {
		fmt.Println("Recipe is already in your favorites.")
		return nil
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	r, err := client.GetRecipe(cmd.Context(), id)
	if err != nil {
		return err
	}

	if err := store.Add(*r); err != nil {
		return err
	}
	fmt.Printf("Saved %q to favorites.\n", r.Title)
	return nil
}

func runFavRemove(cmd *cobra.Command, args []string) error {
	id, err := parseRecipeID(args[0])
	if err != nil {
		return err
	}

	if err := newStore().Remove(id); err != nil {
		return err
	}
	fmt.Println("Recipe removed from favorites.")
	return nil
}
