package state

import (
	"testing"

	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/tui/events"
)

func seeded() (*Store, []*calendar.Event) {
	list := []*calendar.Event{
		{ID: "a", Start: "2024-01-02", End: "2024-01-03"},
		{ID: "b", Start: "2024-01-10", End: "2024-01-12"},
		{ID: "c", Start: "2024-01-20", End: "2024-01-20"},
	}
	s := New("")
	s.ReplaceEvents(list)
	s.SetRange(calendar.DateRange{Start: "2024-01-01", End: "2024-01-31"})
	return s, list
}

func TestEventsReturnsFreshWrapper(t *testing.T) {
	s, list := seeded()
	got := s.Events()
	got[0] = nil
	if s.Events()[0] != list[0] {
		t.Fatalf("mutating returned slice leaked into the store")
	}
}

func TestCommitPreservesOrderAndIdentity(t *testing.T) {
	s, list := seeded()
	before := s.Version()

	ch, cancel := s.Subscribe()
	defer cancel()

	s.Commit(func() { list[1].End = "2024-01-14" })

	if s.Version() != before+1 {
		t.Fatalf("expected version %d, got %d", before+1, s.Version())
	}
	got := s.Events()
	for i := range list {
		if got[i] != list[i] {
			t.Fatalf("event %d identity changed", i)
		}
	}
	if got[1].End != "2024-01-14" {
		t.Fatalf("commit lost mutation: %s", got[1].End)
	}

	msg := (<-ch).(events.EventsChangedMsg)
	if msg.Action != events.ChangeUpdate || msg.Version != before+1 || msg.Count != 3 {
		t.Fatalf("unexpected notification %+v", msg)
	}
}

func TestTouchNotifies(t *testing.T) {
	s, _ := seeded()
	ch, cancel := s.Subscribe()
	defer cancel()
	s.Touch()
	if _, ok := (<-ch).(events.EventsChangedMsg); !ok {
		t.Fatalf("expected EventsChangedMsg")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s, list := seeded()
	snap := s.Snapshot()
	snap[0].End = "2025-01-01"
	if list[0].End != "2024-01-03" {
		t.Fatalf("snapshot mutation leaked into store")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	s, _ := seeded()
	ch, cancel := s.Subscribe()
	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel")
	}
	s.Touch()
}

func TestSlowSubscriberDrops(t *testing.T) {
	s, _ := seeded()
	_, cancel := s.Subscribe()
	defer cancel()
	for i := 0; i < subscriberBuffer*2; i++ {
		s.Touch()
	}
}

func TestFind(t *testing.T) {
	s, list := seeded()
	ev, ok := s.Find("b")
	if !ok || ev != list[1] {
		t.Fatalf("expected shared instance for b")
	}
	if _, ok := s.Find("zzz"); ok {
		t.Fatalf("unexpected match")
	}
}

func TestListen(t *testing.T) {
	s, _ := seeded()
	ch, cancel := s.Subscribe()
	s.Touch()
	if _, ok := Listen(ch)().(events.EventsChangedMsg); !ok {
		t.Fatalf("expected change from Listen")
	}
	cancel()
	if msg := Listen(ch)(); msg != nil {
		t.Fatalf("expected nil after close, got %T", msg)
	}
}
