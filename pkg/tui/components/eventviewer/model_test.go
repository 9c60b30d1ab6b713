package eventviewer

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gridcal/pkg/tui/events"
)

func TestNoteGridMessages(t *testing.T) {
	m := NewModel(10)
	if m.Note(tea.WindowSizeMsg{Width: 10, Height: 10}) {
		t.Fatalf("window size is not a grid message")
	}
	if !m.Note(events.EventsChangedMsg{Action: events.ChangeUpdate, Version: 3}) {
		t.Fatalf("expected change to be logged")
	}
	if !m.Note(events.ResizeRejectedMsg{Component: "dategrid", Event: events.EventRef{Title: "Offsite"}, Reason: "busy"}) {
		t.Fatalf("expected rejection to be logged")
	}

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Summary != "rejected" || entries[0].Level != LevelWarn || entries[0].Source != "dategrid" {
		t.Fatalf("unexpected newest entry %+v", entries[0])
	}
	if entries[1].Source != "state" || !strings.Contains(entries[1].Detail, "version:3") {
		t.Fatalf("unexpected oldest entry %+v", entries[1])
	}
}

func TestAppendCapsEntries(t *testing.T) {
	m := NewModel(3)
	for i := range 5 {
		m.Append(Entry{Summary: fmt.Sprintf("e%d", i)})
	}
	entries := m.Entries()
	if len(entries) != 3 || entries[0].Summary != "e4" || entries[2].Summary != "e2" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestView(t *testing.T) {
	m := NewModel(10)
	if m.View() != "" {
		t.Fatalf("expected empty view before sizing")
	}
	m.now = func() time.Time { return time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC) }
	m.SetSize(80, 6)
	if !strings.Contains(m.View(), "No activity yet") {
		t.Fatalf("expected placeholder:\n%s", m.View())
	}
	m.Note(events.EventResizedMsg{Event: events.EventRef{Title: "Offsite", End: "2024-01-14"}, Days: 2})
	view := m.View()
	for _, want := range []string{"Activity", "09:30:00.000", "resized"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
