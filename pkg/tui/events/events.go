package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// EventRef captures the fields of a calendar event needed by listeners of
// cross-component messages.
type EventRef struct {
	ID    string
	Title string
	Start string
	End   string
}

// Label returns a human-friendly identifier for the event.
func (r EventRef) Label() string {
	if r.Title != "" {
		return r.Title
	}
	return r.ID
}

// ChangeType enumerates supported change actions across components.
type ChangeType string

const (
	// ChangeReplace indicates the events list was swapped for a new one.
	ChangeReplace ChangeType = "replace"
	// ChangeUpdate indicates one or more events changed in place.
	ChangeUpdate ChangeType = "update"
	// ChangeRange indicates the visible range moved.
	ChangeRange ChangeType = "range"
)

// EventsChangedMsg is emitted by the state store every time its events list
// is replaced. Observers compare Version rather than inspecting events.
type EventsChangedMsg struct {
	Component ComponentID
	Action    ChangeType
	Version   uint64
	Count     int
}

// Describe renders the change in a human-friendly format for logs.
func (m EventsChangedMsg) Describe() string {
	return fmt.Sprintf(`action:%q version:%d count:%d`, m.Action, m.Version, m.Count)
}

// EventResizeStartMsg fires when a resize gesture begins on an event edge.
type EventResizeStartMsg struct {
	Component ComponentID
	Event     EventRef
	X         int
}

// Describe renders the gesture start for logs.
func (m EventResizeStartMsg) Describe() string {
	return fmt.Sprintf(`event:%q end:%q x:%d`, m.Event.Label(), m.Event.End, m.X)
}

// EventResizedMsg fires once a resize gesture was released.
type EventResizedMsg struct {
	Component   ComponentID
	Event       EventRef
	PreviousEnd string
	Days        int
}

// Describe renders the finished resize for logs.
func (m EventResizedMsg) Describe() string {
	return fmt.Sprintf(`event:%q end:%q prev:%q days:%d`, m.Event.Label(), m.Event.End, m.PreviousEnd, m.Days)
}

// EventResizedCmd wraps EventResizedMsg into a tea.Cmd.
func EventResizedCmd(component ComponentID, ev EventRef, previousEnd string, days int) tea.Cmd {
	return func() tea.Msg {
		return EventResizedMsg{
			Component:   component,
			Event:       ev,
			PreviousEnd: previousEnd,
			Days:        days,
		}
	}
}

// ResizeRejectedMsg reports that a resize gesture could not start.
type ResizeRejectedMsg struct {
	Component ComponentID
	Event     EventRef
	Reason    string
}

// Describe renders the rejection for logs.
func (m ResizeRejectedMsg) Describe() string {
	return fmt.Sprintf(`event:%q reason:%q`, m.Event.Label(), m.Reason)
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return func() tea.Msg {
		return DebugMsg{Component: component, Context: context, Detail: detail}
	}
}

// Source extracts the emitting component of the messages defined here.
func Source(msg tea.Msg) (string, bool) {
	switch v := msg.(type) {
	case EventsChangedMsg:
		return string(v.Component), true
	case EventResizeStartMsg:
		return string(v.Component), true
	case EventResizedMsg:
		return string(v.Component), true
	case ResizeRejectedMsg:
		return string(v.Component), true
	case DebugMsg:
		return string(v.Component), true
	default:
		return "", false
	}
}

// Describe returns a log line for msg when it has one.
func Describe(msg tea.Msg) string {
	if d, ok := msg.(interface{ Describe() string }); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	case tea.MouseMsg:
		return fmt.Sprintf("mouse=%s", v)
	default:
		return ""
	}
}
