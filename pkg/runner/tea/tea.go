package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/habits/pkg/store"
)

// Run launches the interactive weekly tracker on the given persistence.
func Run(ctx context.Context, p store.Persistence, exportDir string) error {
	prog := tea.NewProgram(New(p, exportDir), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}
