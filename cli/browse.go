package cli

import (
	"fmt"

	"github.com/ajikko/aji/api"
	"github.com/ajikko/aji/favorites"
	"github.com/ajikko/aji/recipe"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var browseTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// recipeItem adapts a recipe for the bubbles list
type recipeItem struct {
	recipe api.Recipe
	saved  bool
}

func (i recipeItem) Title() string {
	marker := ""
	if i.saved {
		marker = " ♥"
	}
	return i.recipe.Title + marker
}

func (i recipeItem) Description() string {
	return fmt.Sprintf("%s • %d likes • %d ingredients • id %d",
		recipe.Grade(i.recipe), i.recipe.AggregateLikes, i.recipe.IngredientCount(), i.recipe.ID)
}

func (i recipeItem) FilterValue() string {
	return i.recipe.Title
}

type browseMode int

const (
	modeList browseMode = iota
	modeDetail
)

// browseModel drives the interactive result browser: a recipe list that
// opens a scrollable detail view, with favorite toggling in both modes
type browseModel struct {
	list     list.Model
	viewport viewport.Model
	mode     browseMode
	store    *favorites.Store
	width    int
	height   int
	ready    bool
	err      error
}

// newBrowse builds the browser over search results, easiest recipes first
func newBrowse(title string, recipes []api.Recipe, store *favorites.Store) (*browseModel, error) {
	recipe.SortByDifficulty(recipes)

	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		saved, err := store.Contains(r.ID)
		if err != nil {
			return nil, err
		}
		items[i] = recipeItem{recipe: r, saved: saved}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.Styles.Title = browseTitleStyle
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
			key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle favorite")),
		}
	}

	return &browseModel{list: l, store: store}, nil
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}

	case tea.KeyMsg:
		if m.mode == modeDetail {
			switch msg.String() {
			case "q", "esc":
				m.mode = modeList
				return m, nil
			case "f":
				return m, m.toggleFavorite()
			case "ctrl+c":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		// Let the list's filter input consume keys while active
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			return m, m.openDetail()
		case "f":
			return m, m.toggleFavorite()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *browseModel) View() string {
	if m.mode == modeDetail {
		help := pagerHelpStyle.Render("↑/k up • ↓/j down • f toggle favorite • q back")
		return m.viewport.View() + "\n" + help
	}
	return m.list.View()
}

// selected returns the recipe under the cursor
func (m *browseModel) selected() (recipeItem, bool) {
	item, ok := m.list.SelectedItem().(recipeItem)
	return item, ok
}

// openDetail renders the selected recipe into the viewport
func (m *browseModel) openDetail() tea.Cmd {
	item, ok := m.selected()
	if !ok {
		return nil
	}

	out, err := renderMarkdown(recipe.Markdown(item.recipe))
	if err != nil {
		m.err = err
		return tea.Quit
	}

	m.viewport.SetContent(out)
	m.viewport.GotoTop()
	m.mode = modeDetail
	return nil
}

// toggleFavorite saves or removes the selected recipe
func (m *browseModel) toggleFavorite() tea.Cmd {
	item, ok := m.selected()
	if !ok {
		return nil
	}

	var err error
	var status string
	if item.saved {
		err = m.store.Remove(item.recipe.ID)
		status = "Removed from favorites"
	} else {
		err = m.store.Add(item.recipe)
		status = "Saved to favorites"
	}
	if err != nil {
		m.err = err
		return tea.Quit
	}

	item.saved = !item.saved
	m.list.SetItem(m.list.Index(), item)
	return m.list.NewStatusMessage(status)
}

// runBrowse starts the interactive browser over search results
func runBrowse(title string, recipes []api.Recipe, store *favorites.Store) error {
	model, err := newBrowse(title, recipes, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := out.(*browseModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
