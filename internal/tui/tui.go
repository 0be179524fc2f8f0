package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the dashboards page until the user quits or ctx is done.
func Run(ctx context.Context, deps Deps) error {
	m := newModel(ctx, deps)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
