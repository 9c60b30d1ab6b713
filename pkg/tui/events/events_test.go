package events

import (
	"strings"
	"testing"
)

func TestDescribeUsesMessageDescriber(t *testing.T) {
	msg := EventResizedMsg{
		Component:   "grid",
		Event:       EventRef{ID: "1", Title: "offsite", End: "2024-01-14"},
		PreviousEnd: "2024-01-12",
		Days:        2,
	}
	got := Describe(msg)
	for _, want := range []string{`event:"offsite"`, `end:"2024-01-14"`, `days:2`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
	if src, ok := Source(msg); !ok || src != "grid" {
		t.Fatalf("unexpected source %q (%v)", src, ok)
	}
}

func TestLabelFallsBackToID(t *testing.T) {
	if got := (EventRef{ID: "abc"}).Label(); got != "abc" {
		t.Fatalf("expected ID fallback, got %q", got)
	}
}

func TestEventResizedCmd(t *testing.T) {
	msg := EventResizedCmd("grid", EventRef{ID: "1"}, "2024-01-12", 1)()
	resized, ok := msg.(EventResizedMsg)
	if !ok {
		t.Fatalf("unexpected message %T", msg)
	}
	if resized.PreviousEnd != "2024-01-12" || resized.Days != 1 {
		t.Fatalf("unexpected message %+v", resized)
	}
}
