package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/gridcal/pkg/config"
)

func TestNewDefaults(t *testing.T) {
	a := New()
	if a.Time == nil || a.State == nil || a.Geometry == nil || a.Surface == nil || a.Release == nil || a.Logger == nil {
		t.Fatalf("expected every collaborator to be set: %+v", a)
	}
	w, err := a.Geometry.DayWidth()
	if err != nil {
		t.Fatalf("unexpected geometry error: %v", err)
	}
	if w != 10 {
		t.Fatalf("expected default day width 10, got %v", w)
	}
}

func TestShowRange(t *testing.T) {
	cfg := config.Default()
	cfg.WindowDays = 14
	a := New(WithConfig(cfg))
	r := a.ShowRange(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	if r.Start != "2024-01-08" || r.End != "2024-01-21" {
		t.Fatalf("unexpected range %+v", r)
	}
	if a.State.Range() != r {
		t.Fatalf("store range not updated")
	}
}

func TestClaimResize(t *testing.T) {
	a := New()
	if err := a.ClaimResize("ev"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.ClaimResize("ev"); !errors.Is(err, ErrResizeInProgress) {
		t.Fatalf("expected ErrResizeInProgress, got %v", err)
	}
	if !a.Resizing("ev") {
		t.Fatalf("expected active claim")
	}
	a.ReleaseResize("ev")
	if err := a.ClaimResize("ev"); err != nil {
		t.Fatalf("claim after release failed: %v", err)
	}
}

func TestParseEvents(t *testing.T) {
	events, err := ParseEvents([]byte(`
events:
  - title: Offsite
    start: "2024-01-10"
    end: "2024-01-12"
    payload:
      room: A
  - id: fixed
    start: "2024-01-20"
    end: "2024-01-20"
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID == "" || events[1].ID != "fixed" {
		t.Fatalf("unexpected IDs %q %q", events[0].ID, events[1].ID)
	}
	if events[0].Payload["room"] != "A" {
		t.Fatalf("payload not decoded: %v", events[0].Payload)
	}
}

func TestParseEventsRejectsInverted(t *testing.T) {
	_, err := ParseEvents([]byte("events:\n  - start: \"2024-01-10\"\n    end: \"2024-01-01\"\n"))
	if err == nil {
		t.Fatalf("expected error for inverted event")
	}
}

func TestSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.yaml")
	body := "events:\n  - id: a\n    start: \"2024-01-10\"\n    end: \"2024-01-12\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := config.Default()
	cfg.EventsFile = path
	a := New(WithConfig(cfg))
	if err := a.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok := a.State.Find("a"); !ok {
		t.Fatalf("seeded event missing")
	}

	cfg.ICSFile = filepath.Join(dir, "missing.ics")
	if err := New(WithConfig(cfg)).Seed(); err == nil {
		t.Fatalf("expected error for missing ics file")
	}
}
