package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/markterm"
)

// Styles maps a Palette to lipgloss styles for the pager chrome.
type Styles struct {
	Title lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles creates Styles from a Palette.
func NewStyles(p markterm.Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Foreground(ansiColor(p.Accent)).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(ansiColor(p.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
