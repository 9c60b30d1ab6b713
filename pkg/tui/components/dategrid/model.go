// Package dategrid renders the visible range as a grid of weeks with one bar
// per event, and turns mouse input into resize gestures.
package dategrid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"

	"tableflip.dev/gridcal/pkg/app"
	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/geometry"
	"tableflip.dev/gridcal/pkg/resize"
	"tableflip.dev/gridcal/pkg/state"
	"tableflip.dev/gridcal/pkg/timeutil"
	"tableflip.dev/gridcal/pkg/tui/events"
	"tableflip.dev/gridcal/pkg/tui/theme"
)

const (
	// gutter is the width of the week label column.
	gutter       = 4
	minCellWidth = 4
)

type keyMap struct {
	Quit  key.Binding
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	}
}

func (k keyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Prev, k.Next, k.Today, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "drag an event's right edge to resize • " + strings.Join(parts, " • ")
}

// Model is the date grid component. It is the app's geometry provider: the
// width of one day is whatever the grid currently draws.
type Model struct {
	id    events.ComponentID
	app   *app.App
	theme theme.Theme
	keys  keyMap
	now   func() time.Time

	width  int
	height int
	layout geometry.Layout
	rows   []row

	active *resize.Controller
	status string
	failed bool

	sub         <-chan tea.Msg
	unsubscribe func()
}

// NewModel creates a grid over the app's state and installs itself as the
// app's geometry provider.
func NewModel(a *app.App) *Model {
	m := &Model{
		id:    events.ComponentID("dategrid"),
		app:   a,
		theme: theme.Default(),
		keys:  defaultKeys(),
		now:   time.Now,
	}
	cw := a.Config.GridWidth / 7
	if cw < minCellWidth {
		cw = minCellWidth
	}
	m.layout = geometry.Layout{Offset: gutter, GridWidth: cw * 7, DaysPerRow: 7}
	a.Geometry = m
	m.sub, m.unsubscribe = a.State.Subscribe()
	m.rebuild()
	return m
}

// ID returns the component identifier used in emitted messages.
func (m *Model) ID() events.ComponentID { return m.id }

// DayWidth implements geometry.Provider.
func (m *Model) DayWidth() (float64, error) {
	return m.layout.DayWidth()
}

// Layout exposes the current cell geometry.
func (m *Model) Layout() geometry.Layout { return m.layout }

// Active returns the resize in progress, if any.
func (m *Model) Active() *resize.Controller { return m.active }

// Status returns the current status line text.
func (m *Model) Status() string { return m.status }

// Close stops listening to the state store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// SetSize resizes the grid to fit width columns.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	cw := (width - gutter) / 7
	if cw < minCellWidth {
		cw = minCellWidth
	}
	m.layout.GridWidth = cw * 7
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return state.Listen(m.sub)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseClickMsg:
		return m, m.handleClick(msg.X, msg.Y, msg.Button)
	case tea.MouseMotionMsg:
		m.app.Surface.Move(msg.X, msg.Y)
	case tea.MouseReleaseMsg:
		return m, m.handleRelease(msg.X, msg.Y)
	case events.EventsChangedMsg:
		m.rebuild()
		return m, state.Listen(m.sub)
	case events.EventResizedMsg:
		m.setStatus(fmt.Sprintf("%s ends %s (%+dd)", msg.Event.Label(), msg.Event.End, msg.Days), false)
		return m, state.Listen(m.sub)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case m.active != nil:
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.shift(-7)
	case key.Matches(msg, m.keys.Next):
		m.shift(7)
	case key.Matches(msg, m.keys.Today):
		m.app.ShowRange(m.now())
	}
	return nil
}

func (m *Model) shift(days int) {
	rng := m.app.State.Range()
	start, err := m.app.Time.AddDays(rng.Start, days)
	if err != nil {
		return
	}
	end, err := m.app.Time.AddDays(rng.End, days)
	if err != nil {
		return
	}
	m.app.State.SetRange(calendar.DateRange{Start: start, End: end})
}

func (m *Model) handleClick(x, y int, button tea.MouseButton) tea.Cmd {
	if m.active != nil {
		// The previous release never reached us (for example it happened
		// outside the terminal); finish that gesture first.
		m.app.Release.Release(x, y)
		m.active = nil
	}
	if button != tea.MouseLeft {
		return nil
	}
	ev, ok := m.edgeAt(x, y)
	if !ok {
		return nil
	}
	ref := events.EventRef{ID: ev.ID, Title: ev.Title, Start: ev.Start, End: ev.End}

	c, err := resize.New(m.app, ev, x)
	if err != nil {
		m.app.Logger.Warn("resize not started", zap.String("event", ev.ID), zap.Error(err))
		m.setStatus(fmt.Sprintf("cannot resize %s: %v", ref.Label(), err), true)
		return func() tea.Msg {
			return events.ResizeRejectedMsg{Component: m.id, Event: ref, Reason: err.Error()}
		}
	}
	m.active = c
	m.setStatus(fmt.Sprintf("resizing %s", ref.Label()), false)
	return func() tea.Msg {
		return events.EventResizeStartMsg{Component: m.id, Event: ref, X: x}
	}
}

func (m *Model) handleRelease(x, y int) tea.Cmd {
	m.app.Release.Release(x, y)
	m.active = nil
	return nil
}

// edgeAt finds the event whose right edge handle is drawn at (x, y). The
// handle is the last two columns of a bar in the week the event ends.
func (m *Model) edgeAt(x, y int) (*calendar.Event, bool) {
	if y < 0 || y >= len(m.rows) {
		return nil, false
	}
	r := m.rows[y]
	if r.kind != rowEvent || !r.edge {
		return nil, false
	}
	barEnd := m.layout.ColumnOf(r.to) + m.layout.CellWidth() - 1
	if x < barEnd-1 || x > barEnd {
		return nil, false
	}
	return m.app.State.Find(r.eventID)
}

func (m *Model) rebuild() {
	m.rows = buildRows(m.app.State.Range(), m.app.State.Events())
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.rows) == 0 {
		return m.theme.Footer.Status.Render("no visible range")
	}
	cw := m.layout.CellWidth()
	today := timeutil.ToDateString(m.now())

	lines := make([]string, 0, len(m.rows)+1)
	for _, r := range m.rows {
		switch r.kind {
		case rowHeader:
			lines = append(lines, m.renderHeader(r, cw))
		case rowWeek:
			lines = append(lines, m.renderWeek(r, cw, today))
		case rowEvent:
			lines = append(lines, m.renderEvent(r, cw))
		}
	}

	status := m.theme.Footer.Help.Render(m.keys.help())
	if m.status != "" {
		style := m.theme.Footer.Status
		if m.failed {
			style = m.theme.Footer.Error
		}
		status = style.Render(m.status)
	}
	lines = append(lines, status)
	return strings.Join(lines, "\n")
}

func (m *Model) renderHeader(r row, cw int) string {
	var days []time.Time
	for _, d := range r.days {
		if t, err := timeutil.ToTime(d); err == nil {
			days = append(days, t)
		}
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutter))
	for _, name := range timeutil.OneLetterDayNames(days) {
		b.WriteString(m.theme.Grid.Header.Render(pad(name, cw)))
	}
	return strings.TrimRight(b.String(), " ")
}

func (m *Model) renderWeek(r row, cw int, today string) string {
	var b strings.Builder
	label := ""
	if t, err := timeutil.ToTime(r.days[0]); err == nil {
		_, week := t.ISOWeek()
		label = fmt.Sprintf("W%02d", week)
	}
	b.WriteString(m.theme.Grid.Week.Render(pad(label, gutter)))
	for _, d := range r.days {
		style := m.theme.Grid.Day
		if d == today {
			style = m.theme.Grid.Today
		}
		b.WriteString(style.Render(pad(strings.TrimLeft(d[len(d)-2:], "0"), cw)))
	}
	return b.String()
}

func (m *Model) renderEvent(r row, cw int) string {
	width := (r.to - r.from + 1) * cw
	style := m.theme.Grid.Event
	if m.active != nil && m.active.Event().ID == r.eventID {
		style = m.theme.Grid.Resizing
	}

	title := r.title
	if title == "" {
		title = r.eventID
	}
	body := pad(" "+truncate.StringWithTail(title, uint(max(width-3, 0)), "…"), width-1)
	handle := " "
	if r.edge {
		handle = "▐"
	}

	return strings.Repeat(" ", gutter+r.from*cw) +
		style.Render(body) +
		style.Inherit(m.theme.Grid.Handle).Render(handle)
}

func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
