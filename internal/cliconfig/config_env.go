package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (POMO_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("record-dir", os.Getenv("POMO_RECORD_DIR"), &cfg.RecordDir)
	s.setString("record-name", os.Getenv("POMO_RECORD_NAME"), &cfg.RecordName)
	s.setString("record-format", os.Getenv("POMO_RECORD_FORMAT"), &cfg.RecordFormat)
	s.setString("log-level", os.Getenv("POMO_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("pomodoro", os.Getenv("POMO_POMODORO"), &cfg.Pomodoro); err != nil {
		return err
	}
	if err := s.setDuration("short-break", os.Getenv("POMO_SHORT_BREAK"), &cfg.ShortBreak); err != nil {
		return err
	}
	if err := s.setDuration("long-break", os.Getenv("POMO_LONG_BREAK"), &cfg.LongBreak); err != nil {
		return err
	}

	s.setBoolFromString("fresh", os.Getenv("POMO_FRESH"), &cfg.Fresh)

	return nil
}
