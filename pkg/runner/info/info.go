package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/gridcal/pkg/app"
	"tableflip.dev/gridcal/pkg/timeutil"
)

// Info reports where configuration came from, what was loaded and which
// range the grid would open on.
type Info struct {
	App *app.App
	Now time.Time
	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.App == nil {
		return fmt.Errorf("info: no app")
	}

	if override := os.Getenv("GRIDCAL_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "GRIDCAL_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(out, "GRIDCAL_CONFIG_PATH env var not set")
	}

	seedErr := n.App.Seed()
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	rng := n.App.ShowRange(now)
	cfg := n.App.Config

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("week start"), cfg.WeekStart.String())
	tbl.AddRow(bold.Sprint("window"), timeutil.FormatWindow(cfg.WindowDays))
	tbl.AddRow(bold.Sprint("grid width"), cfg.GridWidth)
	tbl.AddRow(bold.Sprint("events file"), orNone(cfg.EventsFile))
	tbl.AddRow(bold.Sprint("ics file"), orNone(cfg.ICSFile))
	tbl.AddRow(bold.Sprint("range"), rng.Start+" .. "+rng.End)
	fmt.Fprintln(out, tbl)

	fmt.Fprintf(out, "Events:\n")
	found := 0
	for _, ev := range n.App.State.Events() {
		marker := " "
		if !rng.Contains(ev.Start) && !rng.Contains(ev.End) {
			marker = "-"
		}
		fmt.Fprintf(out, " %s %s  %s .. %s\n", marker, label(ev.Title, ev.ID), ev.Start, ev.End)
		found++
	}
	if found == 0 {
		fmt.Fprintf(out, "  %s\n", "no events")
	}
	return seedErr
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func label(title, id string) string {
	if title != "" {
		return title
	}
	return id
}
