package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tableflip.dev/habits/pkg/app"
	"tableflip.dev/habits/pkg/printers"
	"tableflip.dev/habits/pkg/store"
	"tableflip.dev/habits/pkg/week"
)

// Export writes the markdown report for the week containing On into the
// configured export directory and prints the resulting path.
type Export struct {
	On  time.Time
	Dir string // overrides the configured export directory when set

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	dir := n.Dir
	if dir == "" {
		cfg, err := store.LoadConfig()
		if err != nil {
			return err
		}
		dir = cfg.ExportPath()
	}

	session := app.NewSession(n.Persistence)
	session.Now = func() time.Time { return n.On }
	if err := session.GoToToday(); err != nil {
		return err
	}

	path, err := Write(session.WeekReport(), dir)
	if err != nil {
		return err
	}

	fmt.Printf("exported %s\n", path)
	return nil
}

// Write renders the report and saves it as habit-report-<monday>.md under
// dir, creating the directory as needed.
func Write(report app.WeekReport, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("export: create directory: %w", err)
	}

	name := fmt.Sprintf("habit-report-%s.md", week.FormatDate(report.Week.Start))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(printers.Markdown(report)), 0644); err != nil {
		return "", fmt.Errorf("export: write report: %w", err)
	}
	return path, nil
}
