package ics

import (
	"strings"
	"testing"
)

const sample = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//gridcal//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:offsite@example.com\r\n" +
	"SUMMARY:Offsite\r\n" +
	"LOCATION:Lisbon\r\n" +
	"DTSTART;VALUE=DATE:20240110\r\n" +
	"DTEND;VALUE=DATE:20240113\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:single@example.com\r\n" +
	"SUMMARY:Holiday\r\n" +
	"DTSTART;VALUE=DATE:20240115\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:timed@example.com\r\n" +
	"SUMMARY:Review\r\n" +
	"DTSTART:20240118T090000Z\r\n" +
	"DTEND:20240119T100000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:broken@example.com\r\n" +
	"SUMMARY:No start\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParse(t *testing.T) {
	events, errs, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 skipped event, got %d (%v)", len(errs), errs)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	offsite := events[0]
	if offsite.ID != "offsite@example.com" || offsite.Title != "Offsite" {
		t.Fatalf("unexpected event %+v", offsite)
	}
	if offsite.Start != "2024-01-10" || offsite.End != "2024-01-12" {
		t.Fatalf("expected inclusive end 2024-01-12, got %s..%s", offsite.Start, offsite.End)
	}
	if offsite.Payload["location"] != "Lisbon" {
		t.Fatalf("expected location payload, got %v", offsite.Payload)
	}

	if holiday := events[1]; holiday.Start != "2024-01-15" || holiday.End != "2024-01-15" {
		t.Fatalf("expected single day holiday, got %s..%s", holiday.Start, holiday.End)
	}
	if review := events[2]; review.Start != "2024-01-18" || review.End != "2024-01-19" {
		t.Fatalf("unexpected timed event %s..%s", review.Start, review.End)
	}
}
