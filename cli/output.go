package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ajikko/aji/api"
	"github.com/ajikko/aji/recipe"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// interactive reports whether we should use the TUI
func interactive() bool {
	if plainFlag {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderMarkdown renders a recipe document with glamour
func renderMarkdown(doc string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", failure.Wrap(err)
	}

	out, err := renderer.Render(doc)
	if err != nil {
		return "", failure.Wrap(err)
	}
	return out, nil
}

// showDocument pages a markdown document in a TTY, prints it otherwise
func showDocument(doc string) error {
	if !interactive() {
		fmt.Println(doc)
		return nil
	}

	out, err := renderMarkdown(doc)
	if err != nil {
		return err
	}
	return RunPager(out)
}

// listLine formats one recipe row for the plain listing
func listLine(i int, r api.Recipe) string {
	return fmt.Sprintf("%3d  %-8d %-45s %-7s %4d likes  %2d ingredients",
		i+1, r.ID, truncate(r.Title, 45), recipe.Grade(r), r.AggregateLikes, r.IngredientCount())
}

// printRecipeList prints recipes as a plain table, easiest first
func printRecipeList(recipes []api.Recipe) {
	recipe.SortByDifficulty(recipes)

	fmt.Println(headerStyle.Render(fmt.Sprintf("%3s  %-8s %-45s %-7s %s", "#", "ID", "Recipe", "Level", "Stats")))
	for i, r := range recipes {
		fmt.Println(listLine(i, r))
	}
	fmt.Println(dimStyle.Render("\nUse `aji show <id>` for details, `aji fav add <id>` to save."))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-1]) + "…"
}
