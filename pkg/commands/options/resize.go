package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gridcal/pkg/calendar"
)

// ResizeOptions describe a headless resize gesture.
type ResizeOptions struct {
	Title      string
	Start      string
	End        string
	RangeStart string
	RangeEnd   string
	DayWidth   float64
	From       int
	To         []int
}

func AddResizeArgs(cmd *cobra.Command, o *ResizeOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "event", "Event title.")
	cmd.Flags().StringVar(&o.Start, "start", "", `Event start, example: --start="2024-01-10".`)
	cmd.Flags().StringVar(&o.End, "end", "", `Event end (inclusive), example: --end="2024-01-12".`)
	cmd.Flags().StringVar(&o.RangeStart, "range-start", "", "First visible date. Defaults to the event start.")
	cmd.Flags().StringVar(&o.RangeEnd, "range-end", "", "Last visible date. Defaults to four weeks after the event end.")
	cmd.Flags().Float64Var(&o.DayWidth, "day-width", 40, "Width of one day in pointer units.")
	cmd.Flags().IntVar(&o.From, "from", 0, "Pointer x where the drag starts.")
	cmd.Flags().IntSliceVar(&o.To, "to", nil, "Pointer x positions to move through, in order.")
}

// Event builds the event to resize.
func (o *ResizeOptions) Event() (*calendar.Event, error) {
	if o.Start == "" || o.End == "" {
		return nil, errors.New("--start and --end are required")
	}
	ev := calendar.New(o.Title, o.Start, o.End)
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return ev, nil
}

// Range builds the visible range, filling unset ends from the event.
func (o *ResizeOptions) Range(ev *calendar.Event, addDays func(string, int) (string, error)) (calendar.DateRange, error) {
	r := calendar.DateRange{Start: o.RangeStart, End: o.RangeEnd}
	if r.Start == "" {
		r.Start = ev.Start
	}
	if r.End == "" {
		end, err := addDays(ev.End, 28)
		if err != nil {
			return calendar.DateRange{}, err
		}
		r.End = end
	}
	return r, r.Validate()
}
