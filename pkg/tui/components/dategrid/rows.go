package dategrid

import (
	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/timeutil"
)

type rowKind int

const (
	rowHeader rowKind = iota
	rowWeek
	rowEvent
)

// row is one rendered line of the grid. Week rows carry the dates of their
// columns; event rows carry the span of one event within the week above.
type row struct {
	kind rowKind
	days []string

	eventID string
	title   string
	from    int
	to      int
	edge    bool
}

// buildRows lays the range out in weeks of seven columns, each followed by
// one row per event touching that week.
func buildRows(rng calendar.DateRange, list []*calendar.Event) []row {
	days := rng.Days()
	if len(days) == 0 {
		return nil
	}

	rows := []row{{kind: rowHeader, days: firstWeek(days)}}
	for i := 0; i < len(days); i += 7 {
		week := days[i:min(i+7, len(days))]
		rows = append(rows, row{kind: rowWeek, days: week})
		for _, ev := range list {
			if r, ok := eventRow(week, ev); ok {
				rows = append(rows, r)
			}
		}
	}
	return rows
}

func firstWeek(days []string) []string {
	return days[:min(7, len(days))]
}

func eventRow(week []string, ev *calendar.Event) (row, bool) {
	start, err := timeutil.DateOf(ev.Start)
	if err != nil {
		return row{}, false
	}
	end, err := timeutil.DateOf(ev.End)
	if err != nil {
		return row{}, false
	}
	from, to := -1, -1
	for col, d := range week {
		if d < start || d > end {
			continue
		}
		if from < 0 {
			from = col
		}
		to = col
	}
	if from < 0 {
		return row{}, false
	}
	return row{
		kind:    rowEvent,
		eventID: ev.ID,
		title:   ev.Title,
		from:    from,
		to:      to,
		edge:    week[to] == end,
	}, true
}
