// Package app wires the collaborators every calendar component shares: date
// math, the state store, the day geometry, the pointer signals, configured
// callbacks and the logger.
package app

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/config"
	"tableflip.dev/gridcal/pkg/geometry"
	"tableflip.dev/gridcal/pkg/pointer"
	"tableflip.dev/gridcal/pkg/state"
	"tableflip.dev/gridcal/pkg/timeutil"
)

// ErrResizeInProgress is returned when an event already has an active resize.
var ErrResizeInProgress = errors.New("app: event is already being resized")

// TimeUnits is the date math the calendar relies on.
type TimeUnits interface {
	AddDays(serialized string, n int) (string, error)
	ToTime(serialized string) (time.Time, error)
	ToDateString(t time.Time) string
	WeekFor(t time.Time, firstDay time.Weekday) []time.Time
}

type stdTimeUnits struct{}

func (stdTimeUnits) AddDays(s string, n int) (string, error) { return timeutil.AddDays(s, n) }
func (stdTimeUnits) ToTime(s string) (time.Time, error)      { return timeutil.ToTime(s) }
func (stdTimeUnits) ToDateString(t time.Time) string         { return timeutil.ToDateString(t) }
func (stdTimeUnits) WeekFor(t time.Time, d time.Weekday) []time.Time {
	return timeutil.WeekFor(t, d)
}

// DefaultTimeUnits returns the timeutil backed implementation.
func DefaultTimeUnits() TimeUnits { return stdTimeUnits{} }

// Callbacks are the optional user hooks.
type Callbacks struct {
	// OnEventUpdate is called once an event was changed by the user.
	OnEventUpdate func(calendar.ExternalEvent)
}

// App is the shared application context handed to components.
type App struct {
	Time      TimeUnits
	State     *state.Store
	Geometry  geometry.Provider
	Surface   *pointer.Surface
	Release   *pointer.ReleaseSignal
	Config    config.Config
	Callbacks Callbacks
	Logger    *zap.Logger

	mu       sync.Mutex
	resizing map[string]struct{}
}

// Option customizes New.
type Option func(*App)

// WithConfig sets the configuration.
func WithConfig(cfg config.Config) Option { return func(a *App) { a.Config = cfg } }

// WithGeometry sets the day geometry.
func WithGeometry(p geometry.Provider) Option { return func(a *App) { a.Geometry = p } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(a *App) { a.Logger = l } }

// WithTimeUnits replaces the date math implementation.
func WithTimeUnits(t TimeUnits) Option { return func(a *App) { a.Time = t } }

// WithStore replaces the state store.
func WithStore(s *state.Store) Option { return func(a *App) { a.State = s } }

// WithOnEventUpdate sets the update callback.
func WithOnEventUpdate(fn func(calendar.ExternalEvent)) Option {
	return func(a *App) { a.Callbacks.OnEventUpdate = fn }
}

// New builds an App. Anything not supplied gets a working default; the
// default geometry is derived from the configured grid width.
func New(opts ...Option) *App {
	a := &App{
		Config:   config.Default(),
		resizing: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Time == nil {
		a.Time = DefaultTimeUnits()
	}
	if a.State == nil {
		a.State = state.New("")
	}
	if a.Geometry == nil {
		a.Geometry = geometry.Layout{GridWidth: a.Config.GridWidth, DaysPerRow: 7}
	}
	if a.Surface == nil {
		a.Surface = pointer.NewSurface()
	}
	if a.Release == nil {
		a.Release = pointer.NewReleaseSignal()
	}
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	return a
}

// ShowRange sets the visible range to Config.WindowDays days starting on the
// week of from.
func (a *App) ShowRange(from time.Time) calendar.DateRange {
	r := calendar.RangeFor(from, a.Config.WindowDays, a.Config.WeekStart)
	a.State.SetRange(r)
	return r
}

// ClaimResize marks the event as being resized. Only one claim per event ID
// can be held at a time.
func (a *App) ClaimResize(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.resizing == nil {
		a.resizing = make(map[string]struct{})
	}
	if _, busy := a.resizing[id]; busy {
		return ErrResizeInProgress
	}
	a.resizing[id] = struct{}{}
	return nil
}

// ReleaseResize drops the claim taken by ClaimResize.
func (a *App) ReleaseResize(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.resizing, id)
}

// Resizing reports whether the event has an active resize.
func (a *App) Resizing(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, busy := a.resizing[id]
	return busy
}
