package cliconfig

import (
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config but uses strings for durations.
// RecordLocation is accepted as an alias of RecordDir; RecordDir wins.
type FileConfig struct {
	Pomodoro       string `toml:"pomodoro" yaml:"pomodoro"`
	ShortBreak     string `toml:"short_break" yaml:"short_break"`
	LongBreak      string `toml:"long_break" yaml:"long_break"`
	RecordDir      string `toml:"record_dir" yaml:"record_dir"`
	RecordLocation string `toml:"record_location" yaml:"record_location"`
	RecordName     string `toml:"record_name" yaml:"record_name"`
	RecordFormat   string `toml:"record_format" yaml:"record_format"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`
	Fresh          *bool  `toml:"fresh" yaml:"fresh"`
}

// LoadFileConfig reads a config file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.pomo/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".pomo", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("record-dir", fc.RecordLocation, &cfg.RecordDir)
	s.setString("record-dir", fc.RecordDir, &cfg.RecordDir)
	s.setString("record-name", fc.RecordName, &cfg.RecordName)
	s.setString("record-format", fc.RecordFormat, &cfg.RecordFormat)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("pomodoro", fc.Pomodoro, &cfg.Pomodoro); err != nil {
		return err
	}
	if err := s.setDuration("short-break", fc.ShortBreak, &cfg.ShortBreak); err != nil {
		return err
	}
	if err := s.setDuration("long-break", fc.LongBreak, &cfg.LongBreak); err != nil {
		return err
	}

	s.setBool("fresh", fc.Fresh, &cfg.Fresh)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
