package options

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/gridcal/pkg/timeutil"
)

func TestGetOn(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC) }
	tests := map[string]string{
		"":           "2024-03-05",
		"2024-01-10": "2024-01-10",
		"3/20":       "2024-03-20",
		"1/3":        "2025-01-03",
		"3/5":        "2024-03-05",
	}
	for in, want := range tests {
		o := &OnOptions{OnString: in, Now: now}
		got, err := o.GetOn()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if s := timeutil.ToDateString(got); s != want {
			t.Fatalf("%q: expected %s, got %s", in, want, s)
		}
	}
	if _, err := (&OnOptions{OnString: "soon", Now: now}).GetOn(); err == nil {
		t.Fatalf("expected error for bad date")
	}
}

func TestHandleError(t *testing.T) {
	var out bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &out}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("json mode should swallow the error, got %v", err)
	}
	if strings.TrimSpace(out.String()) != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", out.String())
	}

	o = &OutputOptions{Out: &out}
	if err := o.HandleError(errors.New("boom")); err == nil {
		t.Fatalf("expected error to pass through")
	}
}

func TestResizeOptions(t *testing.T) {
	o := &ResizeOptions{Title: "Offsite", Start: "2024-01-10", End: "2024-01-12"}
	ev, err := o.Event()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.ID == "" || ev.Title != "Offsite" {
		t.Fatalf("unexpected event %+v", ev)
	}
	r, err := o.Range(ev, timeutil.AddDays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != "2024-01-10" || r.End != "2024-02-09" {
		t.Fatalf("unexpected range %+v", r)
	}

	o.RangeStart, o.RangeEnd = "2024-02-01", "2024-01-01"
	if _, err := o.Range(ev, timeutil.AddDays); err == nil {
		t.Fatalf("expected error for inverted range")
	}

	if _, err := (&ResizeOptions{Start: "2024-01-10"}).Event(); err == nil {
		t.Fatalf("expected error without end")
	}
}

func TestLogger(t *testing.T) {
	l, err := (&LogOptions{}).Logger()
	if err != nil || l == nil {
		t.Fatalf("expected nop logger, got %v %v", l, err)
	}

	path := filepath.Join(t.TempDir(), "gridcal.log")
	l, err = (&LogOptions{Verbose: true, File: path}).Logger()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("verbose logger should enable debug")
	}
	_ = l.Sync()
}
