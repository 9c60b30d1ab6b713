// Package eventviewer renders a newest-first log of the messages flowing
// through the grid: store changes, gesture starts, rejections and resizes.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/gridcal/pkg/tui/events"
)

// Level indicates the severity of a logged entry.
type Level int

const (
	// LevelInfo is the default severity.
	LevelInfo Level = iota
	// LevelWarn highlights rejected gestures.
	LevelWarn
)

// Entry captures one rendered message.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// Styles controls the log's presentation.
type Styles struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Timestamp lipgloss.Style
	Source    lipgloss.Style
}

// DefaultStyles returns the stock styling.
func DefaultStyles() Styles {
	return Styles{
		Frame:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Model is a bounded activity log.
type Model struct {
	viewport   viewport.Model
	entries    []Entry
	maxEntries int

	width  int
	height int

	styles Styles
	now    func() time.Time
}

// NewModel constructs a log that keeps at most maxEntries entries.
func NewModel(maxEntries int) *Model {
	if maxEntries <= 0 {
		maxEntries = 200
	}
	return &Model{
		viewport:   viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		maxEntries: maxEntries,
		styles:     DefaultStyles(),
		now:        time.Now,
	}
}

// Entries returns the logged entries, newest first.
func (m *Model) Entries() []Entry { return m.entries }

// SetSize resizes the viewport while keeping the header and border intact.
func (m *Model) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(max(1, width-2))
	m.viewport.SetHeight(max(1, height-3)) // border plus header
	m.refreshContent()
}

// Note records msg when it is one of the grid's own messages. It reports
// whether an entry was added.
func (m *Model) Note(msg tea.Msg) bool {
	source, ok := events.Source(msg)
	if !ok {
		return false
	}
	if source == "" {
		source = "state"
	}
	level := LevelInfo
	if _, rejected := msg.(events.ResizeRejectedMsg); rejected {
		level = LevelWarn
	}
	m.Append(Entry{
		Source:  source,
		Summary: summary(msg),
		Detail:  events.Describe(msg),
		Level:   level,
	})
	return true
}

func summary(msg tea.Msg) string {
	switch msg.(type) {
	case events.EventsChangedMsg:
		return "changed"
	case events.EventResizeStartMsg:
		return "resize start"
	case events.EventResizedMsg:
		return "resized"
	case events.ResizeRejectedMsg:
		return "rejected"
	case events.DebugMsg:
		return "debug"
	default:
		return fmt.Sprintf("%T", msg)
	}
}

// Append inserts a new entry at the top of the log.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = m.now()
	}
	if entry.Summary == "" {
		entry.Summary = "event"
	}
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[:m.maxEntries]
	}
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

// View renders the bordered viewport.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.styles.Header.Render("Activity")
	body := lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

func (m *Model) refreshContent() {
	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		lines = append(lines, m.renderEntry(entry))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = m.styles.Timestamp.Render("No activity yet")
	}
	m.viewport.SetContent(content)
}

func (m *Model) renderEntry(entry Entry) string {
	ts := m.styles.Timestamp.Render(entry.Timestamp.Format("15:04:05.000"))
	source := m.styles.Source.Render(fmt.Sprintf("[%s]", entry.Source))
	msg := entry.Summary
	if entry.Detail != "" {
		msg = msg + ": " + entry.Detail
	}
	if entry.Level == LevelWarn {
		msg = m.styles.Warn.Render(msg)
	} else {
		msg = m.styles.Info.Render(msg)
	}
	return fmt.Sprintf("%s %s %s", ts, source, msg)
}
