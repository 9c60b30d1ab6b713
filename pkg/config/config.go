// Package config loads gridcal settings from .gridcal.yaml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/gridcal/pkg/timeutil"
)

// Config holds the settings the calendar needs at startup.
type Config struct {
	// WeekStart is the first column of the date grid.
	WeekStart time.Weekday
	// WindowDays is the length of the visible range.
	WindowDays int
	// GridWidth is the number of columns given to the seven day cells.
	GridWidth int
	// EventsFile is an optional YAML file of events to load.
	EventsFile string
	// ICSFile is an optional iCalendar file of events to import.
	ICSFile string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	days, _, _ := timeutil.ParseWindow(timeutil.DefaultWindow)
	return Config{
		WeekStart:  time.Monday,
		WindowDays: days,
		GridWidth:  70,
	}
}

// Load reads .gridcal.yaml from GRIDCAL_CONFIG_PATH or the working directory
// and applies GRIDCAL_* environment overrides. A missing file is not an
// error.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("week_start", "monday")
	v.SetDefault("window", timeutil.DefaultWindow)
	v.SetDefault("grid_width", 70)
	v.SetConfigName(".gridcal") // .yaml is implicit
	v.SetEnvPrefix("GRIDCAL")
	v.AutomaticEnv()

	if override := os.Getenv("GRIDCAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes settings from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Default()

	day, err := timeutil.ParseWeekday(v.GetString("week_start"))
	if err != nil {
		return Config{}, fmt.Errorf("config: week_start: %w", err)
	}
	cfg.WeekStart = day

	if w := v.GetString("window"); w != "" {
		days, _, err := timeutil.ParseWindow(w)
		if err != nil {
			return Config{}, fmt.Errorf("config: window: %w", err)
		}
		cfg.WindowDays = days
	}

	if gw := v.GetInt("grid_width"); gw > 0 {
		cfg.GridWidth = gw
	} else if v.IsSet("grid_width") {
		return Config{}, fmt.Errorf("config: grid_width must be positive, got %d", gw)
	}

	if cfg.EventsFile, err = expand(v.GetString("events_file")); err != nil {
		return Config{}, err
	}
	if cfg.ICSFile, err = expand(v.GetString("ics_file")); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	out, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("config: expand %q: %w", path, err)
	}
	return out, nil
}
