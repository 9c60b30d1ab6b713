// Package calendar holds the calendar event model shared by the state store,
// the date grid and the resize controller.
package calendar

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/gridcal/pkg/timeutil"
)

// ErrInvalidEvent is returned when an event's boundaries are unusable.
var ErrInvalidEvent = errors.New("calendar: invalid event")

// Event is the internal representation of a calendar event. Start and End
// are serialized dates (see timeutil) and End is inclusive.
//
// Events are shared by pointer: the state store, the date grid and an
// active resize all observe the same instance.
type Event struct {
	ID      string         `json:"id" yaml:"id"`
	Title   string         `json:"title,omitempty" yaml:"title,omitempty"`
	Start   string         `json:"start" yaml:"start"`
	End     string         `json:"end" yaml:"end"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// New builds an event with a fresh ID.
func New(title, start, end string) *Event {
	return &Event{
		ID:    uuid.NewString(),
		Title: title,
		Start: start,
		End:   end,
	}
}

// EnsureID assigns a fresh ID when the event has none.
func (e *Event) EnsureID() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
}

// Validate checks that both boundaries parse and Start is not after End.
func (e *Event) Validate() error {
	start, err := timeutil.ToTime(e.Start)
	if err != nil {
		return fmt.Errorf("%w: start: %w", ErrInvalidEvent, err)
	}
	end, err := timeutil.ToTime(e.End)
	if err != nil {
		return fmt.Errorf("%w: end: %w", ErrInvalidEvent, err)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidEvent, e.End, e.Start)
	}
	return nil
}

// Days returns how many calendar days the event spans, inclusive.
func (e *Event) Days() int {
	start, err := timeutil.ToTime(e.Start)
	if err != nil {
		return 0
	}
	end, err := timeutil.ToTime(e.End)
	if err != nil {
		return 0
	}
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}

// ExternalEvent is the snapshot handed to callbacks outside the state model.
// It shares nothing with the Event it was taken from.
type ExternalEvent struct {
	ID      string         `json:"id"`
	Title   string         `json:"title,omitempty"`
	Start   string         `json:"start"`
	End     string         `json:"end"`
	Payload map[string]any `json:"payload,omitempty"`
}

// External returns a detached snapshot of e.
func (e *Event) External() ExternalEvent {
	return ExternalEvent{
		ID:      e.ID,
		Title:   e.Title,
		Start:   e.Start,
		End:     e.End,
		Payload: maps.Clone(e.Payload),
	}
}

// Clone returns a copy of e that can be mutated independently.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Payload = maps.Clone(e.Payload)
	return &cp
}
