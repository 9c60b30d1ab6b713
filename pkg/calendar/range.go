package calendar

import (
	"fmt"
	"time"

	"tableflip.dev/gridcal/pkg/timeutil"
)

// DateRange is the window of dates currently displayed. Both ends are
// inclusive serialized dates.
type DateRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// RangeFor builds a range of days days beginning on the first day of the
// week containing from.
func RangeFor(from time.Time, days int, weekStart time.Weekday) DateRange {
	first := timeutil.WeekFor(from, weekStart)[0]
	if days < 1 {
		days = 1
	}
	return DateRange{
		Start: timeutil.ToDateString(first),
		End:   timeutil.ToDateString(first.AddDate(0, 0, days-1)),
	}
}

// Validate checks both ends parse and Start is not after End.
func (r DateRange) Validate() error {
	start, err := timeutil.ToTime(r.Start)
	if err != nil {
		return fmt.Errorf("%w: range start: %w", ErrInvalidEvent, err)
	}
	end, err := timeutil.ToTime(r.End)
	if err != nil {
		return fmt.Errorf("%w: range end: %w", ErrInvalidEvent, err)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: range end %s before start %s", ErrInvalidEvent, r.End, r.Start)
	}
	return nil
}

// Days lists every date in the range in order.
func (r DateRange) Days() []string {
	start, err := timeutil.ToTime(r.Start)
	if err != nil {
		return nil
	}
	end, err := timeutil.ToTime(r.End)
	if err != nil {
		return nil
	}
	var out []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, timeutil.ToDateString(d))
	}
	return out
}

// Contains reports whether the date part of serialized falls in the range.
func (r DateRange) Contains(serialized string) bool {
	date, err := timeutil.DateOf(serialized)
	if err != nil {
		return false
	}
	return date >= r.Start && date <= r.End
}
