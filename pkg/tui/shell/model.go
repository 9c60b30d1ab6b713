// Package shell is the top-level Bubble Tea model: the date grid with an
// optional activity log docked underneath it.
package shell

import (
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"tableflip.dev/gridcal/pkg/app"
	"tableflip.dev/gridcal/pkg/tui/components/dategrid"
	"tableflip.dev/gridcal/pkg/tui/components/eventviewer"
	"tableflip.dev/gridcal/pkg/tui/events"
)

const logHeight = 8

// Model wires the grid and the log together.
type Model struct {
	app    *app.App
	grid   *dategrid.Model
	log    *eventviewer.Model
	toggle key.Binding

	width  int
	height int
}

// New builds the shell over a, installing the grid as the geometry provider.
func New(a *app.App) *Model {
	return &Model{
		app:    a,
		grid:   dategrid.NewModel(a),
		toggle: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "activity log")),
	}
}

// Grid exposes the date grid.
func (m *Model) Grid() *dategrid.Model { return m.grid }

// LogVisible reports whether the activity log is shown.
func (m *Model) LogVisible() bool { return m.log != nil }

// Close releases the grid's store subscription.
func (m *Model) Close() { m.grid.Close() }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return m.grid.Init() }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyPressMsg:
		if key.Matches(msg, m.toggle) && m.grid.Active() == nil {
			m.toggleLog()
			return m, nil
		}
	}

	if m.log != nil && m.log.Note(msg) {
		m.app.Logger.Debug("ui message", zap.String("detail", events.Describe(msg)))
	}
	_, cmd := m.grid.Update(msg)
	return m, cmd
}

func (m *Model) toggleLog() {
	if m.log != nil {
		m.log = nil
	} else {
		m.log = eventviewer.NewModel(400)
		m.log.Append(eventviewer.Entry{Source: "ui", Summary: "debug", Detail: "activity log enabled"})
	}
	m.layout()
}

func (m *Model) layout() {
	gridHeight := m.height
	if m.log != nil && m.height > logHeight*2 {
		gridHeight = m.height - logHeight
		m.log.SetSize(m.width, logHeight)
	} else if m.log != nil {
		m.log.SetSize(m.width, max(3, m.height/2))
		gridHeight = m.height - max(3, m.height/2)
	}
	m.grid.SetSize(m.width, gridHeight)
}

// View implements tea.Model.
func (m *Model) View() string {
	grid := m.grid.View()
	if m.log == nil {
		return grid
	}
	return lipgloss.JoinVertical(lipgloss.Left, grid, m.log.View())
}
