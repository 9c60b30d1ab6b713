// Package resize implements dragging the end edge of a date grid event.
//
// A Controller is created on pointer-down over an event's edge and lives for
// exactly one gesture: it listens to the app's pointer surface, snaps the
// horizontal distance travelled to whole days, and writes every valid new end
// into the shared event. Releasing the pointer anywhere ends the gesture,
// tears the listener down and reports the result.
package resize

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/gridcal/pkg/app"
	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/pointer"
	"tableflip.dev/gridcal/pkg/timeutil"
	"tableflip.dev/gridcal/pkg/tui/events"
)

// ErrNoEvent is returned when New is called without an app or an event.
var ErrNoEvent = errors.New("resize: app and event are required")

// Phase is the lifecycle position of a Controller.
type Phase int

const (
	// Armed controllers track pointer movement.
	Armed Phase = iota + 1
	// Released controllers are finished and track nothing.
	Released
)

func (p Phase) String() string {
	switch p {
	case Armed:
		return "armed"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ComponentID tags the messages published by controllers.
const ComponentID = events.ComponentID("resize")

// Controller tracks one resize gesture on one event.
type Controller struct {
	app   *app.App
	event *calendar.Event
	log   *zap.Logger

	initialX    int
	originalEnd string
	dayWidth    float64

	moveSub *pointer.Subscription
	done    chan struct{}

	mu    sync.Mutex
	phase Phase
	days  int
}

// New starts a resize of ev at pointer column initialX. The controller is
// listening when New returns. The day width is read once here and used for
// the whole gesture; a non-positive width fails construction.
func New(a *app.App, ev *calendar.Event, initialX int) (*Controller, error) {
	if a == nil || ev == nil {
		return nil, ErrNoEvent
	}
	dayWidth, err := a.Geometry.DayWidth()
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	if dayWidth <= 0 || math.IsNaN(dayWidth) || math.IsInf(dayWidth, 0) {
		return nil, fmt.Errorf("resize: unusable day width %v", dayWidth)
	}
	if err := a.ClaimResize(ev.ID); err != nil {
		return nil, fmt.Errorf("resize: %s: %w", ev.ID, err)
	}

	c := &Controller{
		app:         a,
		event:       ev,
		log:         a.Logger.With(zap.String("event", ev.ID)),
		initialX:    initialX,
		originalEnd: ev.End,
		dayWidth:    dayWidth,
		done:        make(chan struct{}),
		phase:       Armed,
	}
	c.moveSub = a.Surface.OnMove(c.handleMove)
	a.Release.Once(c.handleRelease)

	c.log.Debug("resize armed",
		zap.Int("x", initialX),
		zap.String("end", c.originalEnd),
		zap.Float64("day_width", dayWidth))
	return c, nil
}

// Event returns the event being resized.
func (c *Controller) Event() *calendar.Event { return c.event }

// OriginalEnd is the end the event had when the gesture started.
func (c *Controller) OriginalEnd() string { return c.originalEnd }

// DayWidth is the cached width of one day.
func (c *Controller) DayWidth() float64 { return c.dayWidth }

// Phase reports where the controller is in its lifecycle.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Days is the day offset of the last committed move.
func (c *Controller) Days() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.days
}

// Done is closed once the pointer was released.
func (c *Controller) Done() <-chan struct{} { return c.done }

// DaysFor converts a pointer column into a whole-day offset. Partial days
// round toward negative infinity so that moving left by any fraction of a
// day already counts as one day back.
func (c *Controller) DaysFor(x int) int {
	return int(math.Floor(float64(x-c.initialX) / c.dayWidth))
}

func (c *Controller) handleMove(x, _ int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != Armed {
		panic(fmt.Sprintf("resize: move delivered to %s controller for event %s", c.phase, c.event.ID))
	}

	days := c.DaysFor(x)
	candidate, err := c.app.Time.AddDays(c.originalEnd, days)
	if err != nil {
		c.log.Debug("resize move ignored", zap.Int("x", x), zap.Error(err))
		return
	}
	if reason := c.reject(candidate); reason != "" {
		c.log.Debug("resize move rejected",
			zap.Int("x", x),
			zap.String("candidate", candidate),
			zap.String("reason", reason))
		return
	}

	c.days = days
	c.app.State.Commit(func() {
		c.event.End = candidate
	})
	c.log.Debug("resize move committed", zap.Int("x", x), zap.String("end", candidate))
}

// reject returns why candidate cannot become the event end, or "" when it
// can. Range bounds are compared at day granularity, and a range whose
// bounds do not parse accepts nothing.
func (c *Controller) reject(candidate string) string {
	r := c.app.State.Range()
	day, err := timeutil.DateOf(candidate)
	if err != nil {
		return "unparseable candidate"
	}
	end, err := timeutil.DateOf(r.End)
	if err != nil {
		return "invalid visible range"
	}
	if day > end {
		return "after visible range"
	}
	if candidate < c.event.Start {
		return "before event start"
	}
	start, err := timeutil.DateOf(r.Start)
	if err != nil {
		return "invalid visible range"
	}
	if day < start {
		return "before visible range"
	}
	return ""
}

func (c *Controller) handleRelease(_, _ int) {
	// Cancel returns only once no move handler can run again, so the phase
	// change below is never observed by a move.
	c.moveSub.Cancel()

	c.mu.Lock()
	if c.phase != Armed {
		c.mu.Unlock()
		return
	}
	c.phase = Released
	days := c.days
	snapshot := c.event.External()
	c.mu.Unlock()

	c.app.ReleaseResize(c.event.ID)
	close(c.done)

	c.log.Info("resize released",
		zap.String("end", snapshot.End),
		zap.String("previous_end", c.originalEnd),
		zap.Int("days", days))

	if cb := c.app.Callbacks.OnEventUpdate; cb != nil {
		cb(snapshot)
	}
	c.app.State.Publish(events.EventResizedMsg{
		Component:   ComponentID,
		Event:       events.EventRef{ID: snapshot.ID, Title: snapshot.Title, Start: snapshot.Start, End: snapshot.End},
		PreviousEnd: c.originalEnd,
		Days:        days,
	})
}
