package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	teaui "tableflip.dev/habits/pkg/runner/tea"
	"tableflip.dev/habits/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "habits",
		Short: base.Wrap80("Weekly habit tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation opens the tracker.
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			return teaui.Run(context.Background(), p, cfg.ExportPath())
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addMark(topLevel)
	addNote(topLevel)
	addStats(topLevel)
	addExport(topLevel)
	addVersion(topLevel)
}
