package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.WeekStart != time.Monday || cfg.WindowDays != 35 || cfg.GridWidth != 70 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("week_start", "sunday")
	v.Set("window", "2w")
	v.Set("grid_width", 140)
	v.Set("events_file", "/tmp/events.yaml")

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WeekStart != time.Sunday {
		t.Fatalf("expected sunday, got %v", cfg.WeekStart)
	}
	if cfg.WindowDays != 14 {
		t.Fatalf("expected 14 days, got %d", cfg.WindowDays)
	}
	if cfg.GridWidth != 140 {
		t.Fatalf("expected grid width 140, got %d", cfg.GridWidth)
	}
	if cfg.EventsFile != "/tmp/events.yaml" {
		t.Fatalf("unexpected events file %q", cfg.EventsFile)
	}
}

func TestFromViperRejectsBadValues(t *testing.T) {
	for key, val := range map[string]any{
		"week_start": "someday",
		"window":     "3h",
		"grid_width": -1,
	} {
		v := viper.New()
		v.Set(key, val)
		if _, err := FromViper(v); err == nil {
			t.Fatalf("expected error for %s=%v", key, val)
		}
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	body := []byte("week_start: tuesday\nwindow: 10d\n")
	if err := os.WriteFile(filepath.Join(dir, ".gridcal.yaml"), body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GRIDCAL_CONFIG_PATH", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WeekStart != time.Tuesday || cfg.WindowDays != 10 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
