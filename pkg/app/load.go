package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"tableflip.dev/gridcal/pkg/calendar"
	"tableflip.dev/gridcal/pkg/ics"
)

type eventsFile struct {
	Events []*calendar.Event `yaml:"events"`
}

// ParseEvents decodes a YAML events document. Events without an ID are given
// one; invalid events fail the whole document.
func ParseEvents(data []byte) ([]*calendar.Event, error) {
	var doc eventsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("app: decode events: %w", err)
	}
	for i, ev := range doc.Events {
		if ev == nil {
			return nil, fmt.Errorf("app: event %d is empty", i)
		}
		ev.EnsureID()
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("app: event %d (%s): %w", i, ev.ID, err)
		}
	}
	return doc.Events, nil
}

// LoadEvents reads events from a YAML or iCalendar file, chosen by extension.
func (a *App) LoadEvents(path string) ([]*calendar.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("app: open events: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ics", ".ical":
		events, skipped, err := ics.Parse(f)
		if err != nil {
			return nil, err
		}
		for _, err := range skipped {
			a.Logger.Warn("skipped calendar entry", zap.String("path", path), zap.Error(err))
		}
		return events, nil
	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("app: read events: %w", err)
		}
		return ParseEvents(data)
	}
}

// Seed loads the configured events and ICS files into the store.
func (a *App) Seed() error {
	var all []*calendar.Event
	var errs []error
	for _, path := range []string{a.Config.EventsFile, a.Config.ICSFile} {
		if path == "" {
			continue
		}
		events, err := a.LoadEvents(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		a.Logger.Info("loaded events", zap.String("path", path), zap.Int("count", len(events)))
		all = append(all, events...)
	}
	if len(all) > 0 {
		a.State.ReplaceEvents(all)
	}
	return errors.Join(errs...)
}
