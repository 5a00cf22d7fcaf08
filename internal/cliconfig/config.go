package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bft-labs/pomo/internal/domain"
	"github.com/bft-labs/pomo/pkg/log"
)

// Record formats.
const (
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
	FormatNone   = "none"
)

// DefaultRecordName is the base name of the record file.
const DefaultRecordName = "pom-record"

// Config holds CLI configuration for pomo.
type Config struct {
	Pomodoro   time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	RecordDir    string
	RecordName   string
	RecordFormat string

	LogLevel string
	Fresh    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	cycle := domain.DefaultCycleConfig()
	return Config{
		Pomodoro:     cycle.Pomodoro,
		ShortBreak:   cycle.ShortBreak,
		LongBreak:    cycle.LongBreak,
		RecordDir:    DefaultDir(),
		RecordName:   DefaultRecordName,
		RecordFormat: FormatCSV,
		LogLevel:     "info",
	}
}

// DefaultDir returns ~/.pomo, or .pomo when the home directory is unknown.
func DefaultDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".pomo")
	}
	return ".pomo"
}

// Validate checks the configuration for errors and normalizes it.
// Negative durations are clamped to zero.
func (c *Config) Validate() error {
	c.RecordFormat = strings.ToLower(strings.TrimSpace(c.RecordFormat))
	switch c.RecordFormat {
	case FormatCSV, FormatSQLite, FormatNone:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownRecordFormat, c.RecordFormat)
	}

	if c.RecordFormat != FormatNone {
		if c.RecordDir == "" {
			return fmt.Errorf("%w: record-dir is required", domain.ErrInvalidConfig)
		}
		if c.RecordName == "" {
			return fmt.Errorf("%w: record-name is required", domain.ErrInvalidConfig)
		}
	}
	c.RecordDir = expandHome(c.RecordDir)

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	cycle := c.Cycle()
	c.Pomodoro, c.ShortBreak, c.LongBreak = cycle.Pomodoro, cycle.ShortBreak, cycle.LongBreak
	return nil
}

// Cycle returns the interval lengths for the engine.
func (c Config) Cycle() domain.CycleConfig {
	return domain.CycleConfig{
		Pomodoro:   c.Pomodoro,
		ShortBreak: c.ShortBreak,
		LongBreak:  c.LongBreak,
	}.Clamped()
}

// LogPath returns the log file used while the terminal UI is active.
func (c Config) LogPath() string {
	dir := c.RecordDir
	if dir == "" {
		dir = DefaultDir()
	}
	return filepath.Join(dir, "pomo.log")
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(h, strings.TrimPrefix(p, "~"))
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
