package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/commands/options"
	"tableflip.dev/habits/pkg/runner/stats"
	"tableflip.dev/habits/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Tally statuses over a trailing window",
		Example: `
habits stats
habits stats --window 2w
habits stats --window 10d --date 2025-10-15
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := do.GetDate()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := stats.Stats{
				Window:      wo.Window,
				End:         end,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddDateArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
