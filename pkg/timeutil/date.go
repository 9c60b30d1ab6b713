package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the serialized form of a calendar date.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the serialized form of a calendar date with a
	// wall-clock time.
	DateTimeLayout = "2006-01-02 15:04"
)

// ErrInvalidDate is returned when a serialized date cannot be parsed.
var ErrInvalidDate = errors.New("timeutil: invalid date")

// ToTime converts a serialized date or date-time into a structured date.
// The result is a UTC wall clock so that calendar arithmetic never picks up
// daylight saving or zone offsets.
func ToTime(serialized string) (time.Time, error) {
	s := strings.TrimSpace(serialized)
	layout := DateLayout
	if len(s) > len(DateLayout) {
		layout = DateTimeLayout
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, serialized)
	}
	return t, nil
}

// ToDateString serializes t as a calendar date.
func ToDateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ToDateTimeString serializes t as a calendar date with time of day.
func ToDateTimeString(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// IsDateTime reports whether serialized carries a time-of-day component.
func IsDateTime(serialized string) bool {
	return len(strings.TrimSpace(serialized)) > len(DateLayout)
}

// DateOf normalizes a serialized date or date-time to its calendar date.
func DateOf(serialized string) (string, error) {
	t, err := ToTime(serialized)
	if err != nil {
		return "", err
	}
	return ToDateString(t), nil
}

// AddDays moves serialized by n calendar days. The result keeps the shape of
// the input: dates stay dates, date-times keep their time of day.
func AddDays(serialized string, n int) (string, error) {
	t, err := ToTime(serialized)
	if err != nil {
		return "", err
	}
	t = t.AddDate(0, 0, n)
	if IsDateTime(serialized) {
		return ToDateTimeString(t), nil
	}
	return ToDateString(t), nil
}

// WeekFor returns the seven days of the calendar week containing t, starting
// on firstDay.
func WeekFor(t time.Time, firstDay time.Weekday) []time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) - int(firstDay) + 7) % 7
	start := day.AddDate(0, 0, -offset)

	week := make([]time.Time, 7)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// OneLetterDayNames renders the first letter of each weekday in week.
func OneLetterDayNames(week []time.Time) []string {
	names := make([]string, 0, len(week))
	for _, d := range week {
		names = append(names, d.Weekday().String()[:1])
	}
	return names
}

// ParseWeekday accepts full or abbreviated English weekday names.
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return time.Monday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if n == full || (len(n) >= 2 && strings.HasPrefix(full, n)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}
