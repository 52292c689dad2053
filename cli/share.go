package cli

import (
	"fmt"

	"github.com/ajikko/aji/api"
	"github.com/ajikko/aji/share"
	"github.com/spf13/cobra"
)

var (
	sharePlatform = platformFlag{Value: share.PlatformTwitter}
	shareOpenFlag bool

	shareCmd = &cobra.Command{
		Use:   "share <id>",
		Short: "Generate a social share link for a recipe",
		Long: `Build a share link for a recipe on facebook, twitter, whatsapp, or email.
Prints the link by default; --open launches it in the browser.`,
		Args: cobra.ExactArgs(1),
		RunE: runShare,
	}
)

func init() {
	shareCmd.Flags().VarP(&sharePlatform, "platform", "p", "Share platform (facebook, twitter, whatsapp, email)")
	shareCmd.Flags().BoolVar(&shareOpenFlag, "open", false, "Open the share link in the browser")
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	id, err := parseRecipeID(args[0])
	if err != nil {
		return err
	}

	r, err := lookupRecipe(cmd, id)
	if err != nil {
		return err
	}

	link, err := share.Link(sharePlatform.Value, r)
	if err != nil {
		return err
	}

	if shareOpenFlag {
		fmt.Printf("Opening share link for %q...\n", r.Title)
		return share.Open(link)
	}

	fmt.Println(link)
	return nil
}

// lookupRecipe resolves a recipe from favorites first to spare an API call,
// falling back to the live API
func lookupRecipe(cmd *cobra.Command, id int) (api.Recipe, error) {
	if r, ok, err := newStore().Get(id); err == nil && ok {
		return r, nil
	}

	client, err := newClient()
	if err != nil {
		return api.Recipe{}, err
	}

	r, err := client.GetRecipe(cmd.Context(), id)
	if err != nil {
		return api.Recipe{}, err
	}
	return *r, nil
}
