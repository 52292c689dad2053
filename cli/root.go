package cli

import (
	"fmt"
	"strconv"

	"github.com/ajikko/aji/api"
	"github.com/ajikko/aji/config"
	"github.com/ajikko/aji/favorites"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	plainFlag bool

	// Root command
	rootCmd = &cobra.Command{
		Use:           "aji",
		Short:         "Find, save, and share recipes from the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `aji is a CLI recipe finder backed by the Spoonacular API.

Search recipes by the ingredients you already have or by cuisine, read them
with a man-like pager, keep favorites in a local file, and generate share
links for social media.

An API key is required; set the SPOONACULAR_API_KEY environment variable.`,
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("aji version %s\n", Version)
			fmt.Printf("  commit: %s\n", Commit)
			fmt.Printf("  built:  %s\n", Date)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Disable interactive output, print plain text")
	rootCmd.AddCommand(versionCmd)
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}

// newClient builds an API client from the environment
func newClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.BaseURL, cfg.APIKey), nil
}

// newStore builds the favorites store.
// Favorites do not need an API key, so this never fails on a missing key.
func newStore() *favorites.Store {
	return favorites.NewStore(config.FavoritesPath())
}

// parseRecipeID parses a positional recipe ID argument
func parseRecipeID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, failure.New(InvalidRecipeID,
			failure.Message(fmt.Sprintf("Invalid recipe ID %q; expected a positive number", arg)),
			failure.Context{"arg": arg},
		)
	}
	return id, nil
}
