// Package bubbletea provides a Bubble Tea pager for rendered Markdown.
package bubbletea

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the pager program. It blocks until the user quits.
// Cancelling the context also quits the program.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
