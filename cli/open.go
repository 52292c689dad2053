package cli

import (
	"io"
	"net/http"
	"net/url"

	html2md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ajikko/aji/log"
	"github.com/ajikko/aji/share"
	"github.com/mackee/go-readability"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var (
	openBrowserFlag bool

	openCmd = &cobra.Command{
		Use:   "open <id>",
		Short: "Read the recipe's source page in the terminal",
		Long: `Fetch the web page a recipe came from, extract the article content,
and display it in the pager. Use -b to open the page in the browser instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runOpen,
	}
)

func init() {
	openCmd.Flags().BoolVarP(&openBrowserFlag, "browser", "b", false, "Open the source page in the browser")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
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
	if r.SourceURL == "" {
		return failure.New(share.ErrNoSourceURL,
			failure.Message("This recipe has no source page"),
			failure.Context{"id": args[0]},
		)
	}

	if openBrowserFlag {
		return share.Open(r.SourceURL)
	}

	sourceURL, err := url.Parse(r.SourceURL)
	if err != nil {
		return failure.Wrap(err)
	}

	page, err := fetchPage(cmd, sourceURL)
	if err != nil {
		return err
	}

	return showDocument("# " + r.Title + "\n\n" + articleMarkdown(sourceURL, page))
}

// fetchPage downloads the source page HTML
func fetchPage(cmd *cobra.Command, u *url.URL) (string, error) {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, u.String(), nil)
	if err != nil {
		return "", failure.Wrap(err)
	}
	// Some recipe sites reject the default Go user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; aji)")

	client := &http.Client{Transport: log.Transport()}
	resp, err := client.Do(req)
	if err != nil {
		return "", failure.Wrap(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", failure.Wrap(err)
	}
	return string(body), nil
}

// articleMarkdown extracts the readable article from a page and converts it
// to markdown, falling back to a whole-page conversion
func articleMarkdown(u *url.URL, body string) string {
	article, err := readability.Extract(body, readability.DefaultOptions())
	if err == nil && article.Root != nil {
		return readability.ToMarkdown(article.Root)
	}

	converter := html2md.NewConverter(u.Host, true, &html2md.Options{})
	md, err := converter.ConvertString(body)
	if err != nil {
		return body
	}
	return md
}
