package commands

import (
	"context"

	"github.com/spf13/cobra"

	teaui "tableflip.dev/habits/pkg/runner/tea"
	"tableflip.dev/habits/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the weekly tracker",
		Example: `
habits ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
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

	topLevel.AddCommand(cmd)
}
