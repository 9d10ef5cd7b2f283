package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/commands/options"
	"tableflip.dev/habits/pkg/runner/note"
	"tableflip.dev/habits/pkg/store"
)

func addNote(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	query := ""
	text := ""

	cmd := &cobra.Command{
		Use:   "note <habit> <text>",
		Short: "Attach a note to a habit's day",
		Long:  "Attach a note to a habit's log for a day. An empty text clears the note.",
		Example: `
habits note shower "cold rinse"
habits note meds "" --date 2025-10-15
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires a habit and a note text")
			}
			query = args[0]
			text = strings.Join(args[1:], " ")
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
			s := note.Note{
				Query:       query,
				On:          on,
				Text:        text,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
