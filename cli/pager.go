package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	matchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color("228")).
			Foreground(lipgloss.Color("0"))

	pagerHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)
)

// pagerModel is the state for the recipe document pager
type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool

	searching bool
	input     textinput.Model
	matches   []int // line numbers containing the query
	current   int
}

// NewPager creates a pager over the given content
func NewPager(content string) *pagerModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return &pagerModel{
		content: content,
		input:   ti,
	}
}

// Init initializes the pager model
func (m *pagerModel) Init() tea.Cmd {
	return nil
}

// Update handles user input and updates the model state
func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.Type {
			case tea.KeyEscape:
				m.searching = false
				m.input.Reset()
				m.clearSearch()
			case tea.KeyEnter:
				m.searching = false
				m.performSearch()
			default:
				m.input, cmd = m.input.Update(msg)
			}
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "f", "pagedown", "space":
			m.viewport.ScrollDown(m.viewport.Height)
		case "b", "pageup":
			m.viewport.ScrollUp(m.viewport.Height)
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		case "/":
			m.searching = true
			m.input.Focus()
			return m, textinput.Blink
		case "n":
			m.jumpMatch(1)
		case "N":
			m.jumpMatch(-1)
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.viewport.Style = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				PaddingLeft(2).
				PaddingRight(2)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the current state of the model
func (m *pagerModel) View() string {
	if !m.ready {
		return "\nInitializing..."
	}

	var help string
	if m.searching {
		help = m.input.View()
	} else {
		base := "↑/k up • ↓/j down • space/f forward • b back • g top • G bottom • / search • q quit"
		if len(m.matches) > 0 {
			base = fmt.Sprintf("match %d/%d • n next • N previous • %s",
				m.current+1, len(m.matches), base)
		}
		help = pagerHelpStyle.Render(base)
	}
	return m.viewport.View() + "\n" + help
}

// performSearch records the lines matching the query and highlights them
func (m *pagerModel) performSearch() {
	query := m.input.Value()
	if query == "" {
		return
	}

	m.matches = nil
	m.current = 0

	// Case-insensitive unless the query carries an upper-case letter
	fold := query == strings.ToLower(query)
	match := func(line string) bool {
		if fold {
			line = strings.ToLower(line)
		}
		return strings.Contains(line, query)
	}

	var highlighted []string
	for i, line := range strings.Split(m.content, "\n") {
		if match(line) {
			m.matches = append(m.matches, i)
			if fold {
				line = highlightFold(line, query)
			} else {
				line = strings.ReplaceAll(line, query, matchHighlight.Render(query))
			}
		}
		highlighted = append(highlighted, line)
	}

	if len(m.matches) > 0 {
		m.viewport.SetContent(strings.Join(highlighted, "\n"))
		m.scrollToMatch(0)
	}
}

// highlightFold highlights every case-insensitive occurrence of query in line
func highlightFold(line, query string) string {
	lower := strings.ToLower(line)
	var b strings.Builder
	for {
		i := strings.Index(lower, query)
		if i == -1 {
			b.WriteString(line)
			return b.String()
		}
		b.WriteString(line[:i])
		b.WriteString(matchHighlight.Render(line[i : i+len(query)]))
		line = line[i+len(query):]
		lower = lower[i+len(query):]
	}
}

func (m *pagerModel) jumpMatch(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.matches)) % len(m.matches)
	m.scrollToMatch(m.current)
}

func (m *pagerModel) scrollToMatch(index int) {
	line := m.matches[index]
	if line < m.viewport.YOffset || line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line)
	}
}

// clearSearch removes highlights and resets search state
func (m *pagerModel) clearSearch() {
	m.matches = nil
	m.current = 0
	m.viewport.SetContent(m.content)
}

// RunPager starts the pager program with the given content
func RunPager(content string) error {
	p := tea.NewProgram(
		NewPager(content),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
