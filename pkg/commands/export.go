package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/commands/options"
	"tableflip.dev/habits/pkg/runner/export"
	"tableflip.dev/habits/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	dir := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the week's report as markdown",
		Long:  "Write the markdown report for the week containing the given date (today by default).",
		Example: `
habits export
habits export --date 2025-10-15 --dir /tmp
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := do.GetDate()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				On:          on,
				Dir:         dir,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Override the configured export directory.")
	options.AddDateArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
