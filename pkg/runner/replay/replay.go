// Package replay drives a resize gesture from a recorded pointer path
// without a terminal and prints what every move did.
package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/gridcal/pkg/app"
	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/resize"
)

// Move reports the outcome of one pointer position.
type Move struct {
	X         int    `json:"x"`
	Days      int    `json:"days"`
	End       string `json:"end"`
	Committed bool   `json:"committed"`
}

// Result is the whole replay.
type Result struct {
	OriginalEnd string                  `json:"originalEnd"`
	Moves       []Move                  `json:"moves"`
	Updated     *calendar.ExternalEvent `json:"updated,omitempty"`
}

// Replay resizes Event inside Range starting at pointer column From and
// moving through Path, then releases.
type Replay struct {
	App   *app.App
	Event *calendar.Event
	Range calendar.DateRange
	From  int
	Path  []int
	JSON  bool
	Out   io.Writer
}

// Do runs the replay and prints the result.
func (r *Replay) Do(ctx context.Context) error {
	res, err := r.Run(ctx)
	if err != nil {
		return err
	}
	return r.print(res)
}

// Run performs the replay and returns its result.
func (r *Replay) Run(ctx context.Context) (*Result, error) {
	if r.App == nil || r.Event == nil {
		return nil, errors.New("replay: app and event are required")
	}
	if err := r.Event.Validate(); err != nil {
		return nil, err
	}
	if err := r.Range.Validate(); err != nil {
		return nil, err
	}

	res := &Result{OriginalEnd: r.Event.End}
	prev := r.App.Callbacks.OnEventUpdate
	r.App.Callbacks.OnEventUpdate = func(ev calendar.ExternalEvent) {
		res.Updated = &ev
		if prev != nil {
			prev(ev)
		}
	}
	defer func() { r.App.Callbacks.OnEventUpdate = prev }()

	r.App.State.SetRange(r.Range)
	r.App.State.ReplaceEvents([]*calendar.Event{r.Event})

	c, err := resize.New(r.App, r.Event, r.From)
	if err != nil {
		return nil, err
	}
	for _, x := range r.Path {
		if err := ctx.Err(); err != nil {
			r.App.Release.Release(x, 0)
			return nil, err
		}
		before := r.App.State.Version()
		r.App.Surface.Move(x, 0)
		res.Moves = append(res.Moves, Move{
			X:         x,
			Days:      c.DaysFor(x),
			End:       r.Event.End,
			Committed: r.App.State.Version() != before,
		})
	}
	r.App.Release.Release(r.From, 0)
	return res, nil
}

func (r *Replay) print(res *Result) error {
	out := r.Out
	if out == nil {
		out = color.Output
	}
	if r.JSON {
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	bold := color.New(color.Bold)
	rejected := color.New(color.FgRed)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("X"), bold.Sprint("DAYS"), bold.Sprint("END"), bold.Sprint("RESULT"))
	for _, m := range res.Moves {
		outcome := "committed"
		if !m.Committed {
			outcome = rejected.Sprint("rejected")
		}
		tbl.AddRow(m.X, fmt.Sprintf("%+d", m.Days), m.End, outcome)
	}
	if _, err := fmt.Fprintln(out, tbl); err != nil {
		return err
	}
	if res.Updated != nil {
		_, err := fmt.Fprintf(out, "\n%s %s -> %s\n", bold.Sprint(label(res.Updated)), res.OriginalEnd, res.Updated.End)
		return err
	}
	return nil
}

func label(ev *calendar.ExternalEvent) string {
	if ev.Title != "" {
		return ev.Title
	}
	return ev.ID
}
