// Package ics imports calendar events from iCalendar data.
package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/timeutil"
)

// ErrNoStart is returned for a VEVENT without DTSTART.
var ErrNoStart = errors.New("ics: missing DTSTART")

const icsDate = "20060102"

// Parse reads every VEVENT from r and converts it to a day-granularity
// event. All-day DTEND values are exclusive and are turned into inclusive
// ends. VEVENTs that cannot be converted are skipped and reported in the
// returned error list.
func Parse(r io.Reader) ([]*calendar.Event, []error, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, nil, fmt.Errorf("ics: parse: %w", err)
	}

	var (
		out  []*calendar.Event
		errs []error
	)
	for _, ve := range cal.Events() {
		ev, err := convert(ve)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, ev)
	}
	return out, errs, nil
}

func convert(ve *ical.VEvent) (*calendar.Event, error) {
	ev := &calendar.Event{}
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		ev.ID = p.Value
	}
	ev.EnsureID()
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Title = p.Value
	}
	payload := map[string]any{}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil && p.Value != "" {
		payload["location"] = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil && p.Value != "" {
		payload["description"] = p.Value
	}
	if len(payload) > 0 {
		ev.Payload = payload
	}

	startProp := ve.GetProperty(ical.ComponentPropertyDtStart)
	if startProp == nil || startProp.Value == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoStart, ev.ID)
	}

	if isAllDay(startProp) {
		start, err := time.Parse(icsDate, strings.TrimSpace(startProp.Value))
		if err != nil {
			return nil, fmt.Errorf("ics: %s: DTSTART: %w", ev.ID, err)
		}
		end := start
		if endProp := ve.GetProperty(ical.ComponentPropertyDtEnd); endProp != nil && endProp.Value != "" {
			exclusive, err := time.Parse(icsDate, strings.TrimSpace(endProp.Value))
			if err != nil {
				return nil, fmt.Errorf("ics: %s: DTEND: %w", ev.ID, err)
			}
			if last := exclusive.AddDate(0, 0, -1); last.After(start) {
				end = last
			}
		}
		ev.Start = timeutil.ToDateString(start)
		ev.End = timeutil.ToDateString(end)
		return ev, nil
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("ics: %s: DTSTART: %w", ev.ID, err)
	}
	end, err := ve.GetEndAt()
	if err != nil || end.Before(start) {
		end = start
	}
	ev.Start = timeutil.ToDateString(start)
	ev.End = timeutil.ToDateString(end)
	return ev, nil
}

func isAllDay(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}
