// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// AddOptions captures habit creation flags.
type AddOptions struct {
	Description string
	Frequency   string
}

func AddHabitArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Describe the habit.")
	cmd.Flags().StringVarP(&o.Frequency, "frequency", "f", "",
		"How often the habit recurs. One of 'daily', 'weekly' or 'as-needed'.")
}

// WindowOptions captures the trailing range for stats.
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "1w",
		`Trailing window to tally, example: --window="2w" or --window="10d".`)
}
