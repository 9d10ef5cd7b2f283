package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/commands/options"
	"tableflip.dev/habits/pkg/runner/get"
	"tableflip.dev/habits/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	do := &options.DateOptions{}
	showDay := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List habits, or show a day with --day",
		Example: `
habits get
habits get --day
habits get --day --date 2025-10-15
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			if showDay || do.DateString != "" {
				var on time.Time
				if on, err = do.GetDate(); err != nil {
					return err
				}
				s.On = &on
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showDay, "day", false, "Show the day view instead of the habit list.")
	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
