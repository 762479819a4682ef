package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the dashboard on the terminal until the user quits or ctx is cancelled.
func Run(ctx context.Context, source Source) error {
	program := tea.NewProgram(
		NewModel(ctx, source),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
