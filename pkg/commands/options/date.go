package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/habits/pkg/week"
)

const layoutISOShort = "1/2"

// DateOptions
type DateOptions struct {
	DateString string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.DateString, "date", "",
		`Specify a date, example: --date="2025-10-15" or --date="10/15". Defaults to today.`)
}

// GetDate resolves the flag to a day, defaulting to today. Short dates take
// the current year.
func (o *DateOptions) GetDate() (time.Time, error) {
	if o.DateString == "" {
		return week.Truncate(time.Now()), nil
	}
	t, err := week.ParseDate(o.DateString)
	if err != nil {
		t, err = time.Parse(layoutISOShort, o.DateString)
		if err != nil {
			return time.Time{}, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
	}
	return week.Truncate(t), nil
}
