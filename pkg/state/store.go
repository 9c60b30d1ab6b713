// Package state holds the reactive application state of the calendar: the
// authoritative events list and the visible date range.
package state

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/tui/events"
)

const subscriberBuffer = 64

// Store maintains the events list and visible range and notifies subscribers
// on every change. Changes are detected by version, never by inspecting
// events: any in-place mutation of an event must be paired with Commit or
// Touch for observers to see it.
type Store struct {
	component events.ComponentID

	mu      sync.RWMutex
	events  []*calendar.Event
	rng     calendar.DateRange
	version uint64

	subMu  sync.Mutex
	nextID int
	subs   map[int]chan tea.Msg
}

// New creates an empty store that will emit events using the provided
// ComponentID (falls back to "state" if empty).
func New(component events.ComponentID) *Store {
	if component == "" {
		component = events.ComponentID("state")
	}
	return &Store{
		component: component,
		subs:      make(map[int]chan tea.Msg),
	}
}

// Events returns a fresh slice wrapping the current events. The elements are
// the shared instances; callers must not mutate them outside Commit.
func (s *Store) Events() []*calendar.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*calendar.Event(nil), s.events...)
}

// Snapshot returns detached copies of the current events, safe to use from
// any goroutine.
func (s *Store) Snapshot() []*calendar.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*calendar.Event, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Clone())
	}
	return out
}

// Find returns the shared instance of the event with the given ID.
func (s *Store) Find(id string) (*calendar.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return nil, false
}

// Range returns the visible date range.
func (s *Store) Range() calendar.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rng
}

// Version increases by one on every change notification.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// SetRange replaces the visible date range.
func (s *Store) SetRange(r calendar.DateRange) {
	s.mu.Lock()
	s.rng = r
	s.version++
	msg := s.changeLocked(events.ChangeRange)
	s.mu.Unlock()
	s.emit(msg)
}

// ReplaceEvents installs list as the new events list.
func (s *Store) ReplaceEvents(list []*calendar.Event) {
	s.mu.Lock()
	s.events = append([]*calendar.Event(nil), list...)
	s.version++
	msg := s.changeLocked(events.ChangeReplace)
	s.mu.Unlock()
	s.emit(msg)
}

// Commit runs mutate under the store's write lock and then publishes the
// change with a fresh sequence wrapping the same events. The order and
// membership of the list are preserved.
func (s *Store) Commit(mutate func()) {
	s.mu.Lock()
	if mutate != nil {
		mutate()
	}
	s.events = append([]*calendar.Event(nil), s.events...)
	s.version++
	msg := s.changeLocked(events.ChangeUpdate)
	s.mu.Unlock()
	s.emit(msg)
}

// Touch publishes a change without mutating anything, for callers that
// already updated an event in place.
func (s *Store) Touch() {
	s.Commit(nil)
}

// Subscribe registers a listener for change notifications. The returned
// function unsubscribes and closes the channel. Slow subscribers drop
// messages rather than stall writers; Version tells them what they missed.
func (s *Store) Subscribe() (<-chan tea.Msg, func()) {
	ch := make(chan tea.Msg, subscriberBuffer)
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
}

// Publish forwards msg to every subscriber using the store's drop policy.
func (s *Store) Publish(msg tea.Msg) {
	s.emit(msg)
}

// Listen returns a tea.Cmd that waits for the next message on ch.
func Listen(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (s *Store) changeLocked(action events.ChangeType) events.EventsChangedMsg {
	return events.EventsChangedMsg{
		Component: s.component,
		Action:    action,
		Version:   s.version,
		Count:     len(s.events),
	}
}

func (s *Store) emit(msg tea.Msg) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}
