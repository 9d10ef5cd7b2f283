package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/commands/options"
	"tableflip.dev/habits/pkg/runner/add"
	"tableflip.dev/habits/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Example: `
habits add Meditate
habits add "Trim nails" --frequency weekly
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Name:        strings.Join(args, " "),
				Description: ao.Description,
				Frequency:   ao.Frequency,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddHabitArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}
