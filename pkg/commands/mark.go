package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/commands/options"
	"tableflip.dev/habits/pkg/glyph"
	"tableflip.dev/habits/pkg/runner/mark"
	"tableflip.dev/habits/pkg/store"
)

func addMark(topLevel *cobra.Command) {
	addMarkVerb(topLevel, "done", glyph.Done, "Mark a habit done",
		"Marking a Weekly habit done fills the earlier open days of its week as skipped.")
	addMarkVerb(topLevel, "skip", glyph.Skipped, "Mark a habit skipped", "")
	addMarkVerb(topLevel, "clear", glyph.Unmarked, "Clear a habit's mark", "")
}

func addMarkVerb(topLevel *cobra.Command, verb string, status glyph.Status, short, long string) {
	do := &options.DateOptions{}
	query := ""

	cmd := &cobra.Command{
		Use:   verb + " <habit>",
		Short: short,
		Long:  long,
		Example: `
habits ` + verb + ` shower
habits ` + verb + ` shower --date 2025-10-15
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a habit name or id")
			}
			query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := do.GetDate()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := mark.Mark{
				Query:       query,
				On:          on,
				Status:      status,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
