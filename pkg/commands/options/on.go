package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/timeutil"
)

const layoutShort = "1/2"

// OnOptions pick the date a command is about.
type OnOptions struct {
	OnString string
	// Now defaults to time.Now.
	Now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-01-10" or --on="1/10".`)
}

// GetOn returns the requested date, or today when none was given.
func (o *OnOptions) GetOn() (time.Time, error) {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	if o.OnString == "" {
		return now(), nil
	}
	if t, err := timeutil.ToTime(o.OnString); err == nil {
		return t, nil
	}
	t, err := time.Parse(layoutShort, o.OnString)
	if err != nil {
		return time.Time{}, err
	}
	// A month/day without a year means the next time that day comes around.
	ref := now()
	t = time.Date(ref.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if t.Before(time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)) {
		t = t.AddDate(1, 0, 0)
	}
	return t, nil
}
