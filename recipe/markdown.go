package recipe

import (
	"fmt"
	"strings"

	html2md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ajikko/aji/api"
)

// htmlToMarkdown converts API-supplied HTML fragments (summaries and
// instructions arrive with <b>, <ol>, <li> markup) into markdown.
// On conversion failure the raw text is returned as-is.
func htmlToMarkdown(s string) string {
	if s == "" {
		return ""
	}
	converter := html2md.NewConverter("", true, &html2md.Options{})
	md, err := converter.ConvertString(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(md)
}

// Markdown renders a full recipe as a markdown document for terminal display
func Markdown(r api.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)

	fmt.Fprintf(&b, "- **Time**: %s\n", orNA(minutes(r.ReadyInMinutes)))
	fmt.Fprintf(&b, "- **Servings**: %s\n", orNA(nonZero(r.Servings)))
	fmt.Fprintf(&b, "- **Difficulty**: %s\n", Grade(r))
	fmt.Fprintf(&b, "- **Cuisine**: %s\n", orNA(strings.Join(r.Cuisines, ", ")))
	fmt.Fprintf(&b, "- **Source**: %s\n", orNA(r.SourceName))
	fmt.Fprintf(&b, "- **Likes**: %d\n", r.AggregateLikes)

	if summary, ok := Summarize(r); ok {
		b.WriteString("\n## Health\n\n")
		fmt.Fprintf(&b, "- **Calories**: %s\n", summary.Calories)
		fmt.Fprintf(&b, "- **Score**: %d/100\n", summary.Score)
		for _, m := range summary.Metrics {
			fmt.Fprintf(&b, "- %s\n", m)
		}
	}

	if r.Summary != "" {
		b.WriteString("\n## About\n\n")
		b.WriteString(htmlToMarkdown(r.Summary))
		b.WriteString("\n")
	}

	if len(r.ExtendedIngredients) > 0 {
		b.WriteString("\n## Ingredients\n\n")
		for _, ing := range r.ExtendedIngredients {
			amount := strings.TrimSpace(FormatAmount(ing.Amount) + " " + ing.Unit)
			if amount == "" {
				fmt.Fprintf(&b, "- %s\n", ing.Name)
			} else {
				fmt.Fprintf(&b, "- %s %s\n", amount, ing.Name)
			}
		}
	}

	b.WriteString("\n## Instructions\n\n")
	if r.Instructions == "" {
		b.WriteString("No instructions available.\n")
	} else {
		b.WriteString(htmlToMarkdown(r.Instructions))
		b.WriteString("\n")
	}

	if r.SourceURL != "" {
		fmt.Fprintf(&b, "\nFull recipe: %s\n", r.SourceURL)
	}

	return b.String()
}

func minutes(m int) string {
	if m <= 0 {
		return ""
	}
	return fmt.Sprintf("%d minutes", m)
}

func nonZero(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
