package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

const statusHeight = 1

// Model is the Bubble Tea model for the pager.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	content  string
	title    string
	headings []int // line offsets of headings in content
	styles   Styles
	ready    bool
}

// New creates a pager over already rendered content. Title is shown in the
// status line; headings are the plain heading texts used for n/p jumps.
func New(content, title string, headings []string, styles Styles) Model {
	return Model{
		content:  content,
		title:    title,
		headings: headingLines(content, headings),
		styles:   styles,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n":
			m.Viewport.SetYOffset(m.nextHeading())
			return m, nil
		case "p", "N":
			m.Viewport.SetYOffset(m.prevHeading())
			return m, nil
		case "g", "home":
			m.Viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.Viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.Viewport.View() + "\n" + m.statusLine()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	vpHeight := msg.Height - statusHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.Viewport.SetContent(m.content)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	return m
}

func (m Model) nextHeading() int {
	for _, line := range m.headings {
		if line > m.Viewport.YOffset {
			return line
		}
	}
	return m.Viewport.YOffset
}

func (m Model) prevHeading() int {
	for i := len(m.headings) - 1; i >= 0; i-- {
		if m.headings[i] < m.Viewport.YOffset {
			return m.headings[i]
		}
	}
	return 0
}

func (m Model) statusLine() string {
	right := m.styles.Muted.Render(fmt.Sprintf(" %3.f%%  q quit  n/p heading", m.Viewport.ScrollPercent()*100))
	avail := m.Viewport.Width - lipgloss.Width(right) - 1
	if avail < 1 {
		return right
	}
	title := runewidth.Truncate(m.title, avail, "…")
	left := m.styles.Title.Render(title)
	gap := m.Viewport.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// headingLines finds each heading, in order, in the rendered lines.
// Headings that were wrapped or restyled beyond recognition are skipped.
func headingLines(content string, headings []string) []int {
	lines := strings.Split(ansi.Strip(content), "\n")
	var offsets []int
	next := 0
	for _, h := range headings {
		if h == "" {
			continue
		}
		for i := next; i < len(lines); i++ {
			if strings.Contains(lines[i], h) {
				offsets = append(offsets, i)
				next = i + 1
				break
			}
		}
	}
	return offsets
}
