package week

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/gridcal/pkg/timeutil"
)

// Day is one column of the printed week.
type Day struct {
	Date   string `json:"date"`
	Letter string `json:"letter"`
	Today  bool   `json:"today,omitempty"`
}

// Week prints the seven days of the week containing On.
type Week struct {
	On        time.Time
	WeekStart time.Weekday
	Today     time.Time
	JSON      bool
	Out       io.Writer
}

// Days lists the week around On starting at WeekStart.
func (w *Week) Days() []Day {
	week := timeutil.WeekFor(w.On, w.WeekStart)
	letters := timeutil.OneLetterDayNames(week)
	today := ""
	if !w.Today.IsZero() {
		today = timeutil.ToDateString(w.Today)
	}
	out := make([]Day, len(week))
	for i, d := range week {
		date := timeutil.ToDateString(d)
		out[i] = Day{Date: date, Letter: letters[i], Today: date == today}
	}
	return out
}

func (w *Week) Do(ctx context.Context) error {
	out := w.Out
	if out == nil {
		out = color.Output
	}
	days := w.Days()

	if w.JSON {
		b, err := json.Marshal(days)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	highlight := color.New(color.Bold, color.FgCyan)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range days {
		date := d.Date
		if d.Today {
			date = highlight.Sprint(date)
		}
		tbl.AddRow(d.Letter, date)
	}
	_, err := fmt.Fprintln(out, tbl)
	return err
}
