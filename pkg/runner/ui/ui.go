package ui

import (
	"context"
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/gridcal/pkg/app"
	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/tui/shell"
)

// UI runs the interactive date grid.
type UI struct {
	App *app.App
	// Options are appended to the program defaults, mostly for tests.
	Options []tea.ProgramOption
}

func (u *UI) Do(ctx context.Context) error {
	if err := u.App.Seed(); err != nil {
		u.App.Logger.Warn("some events could not be loaded", zap.Error(err))
	}
	u.App.ShowRange(time.Now())

	prev := u.App.Callbacks.OnEventUpdate
	u.App.Callbacks.OnEventUpdate = func(ev calendar.ExternalEvent) {
		if b, err := json.Marshal(ev); err == nil {
			u.App.Logger.Info("event updated", zap.ByteString("event", b))
		}
		if prev != nil {
			prev(ev)
		}
	}

	m := shell.New(u.App)
	defer m.Close()

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}, u.Options...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
