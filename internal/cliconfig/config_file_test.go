package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Pomodoro:     "30m",
				ShortBreak:   "6m",
				LongBreak:    "20m",
				RecordDir:    "/file/dir",
				RecordName:   "file-record",
				RecordFormat: "sqlite",
				LogLevel:     "warn",
				Fresh:        &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Pomodoro:     30 * time.Minute,
				ShortBreak:   6 * time.Minute,
				LongBreak:    20 * time.Minute,
				RecordDir:    "/file/dir",
				RecordName:   "file-record",
				RecordFormat: "sqlite",
				LogLevel:     "warn",
				Fresh:        true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				RecordName: "file-record",
				LongBreak:  "20m",
			},
			changed: map[string]bool{"record-name": true},
			initial: Config{
				RecordName: "flag-record",
			},
			expected: Config{
				RecordName: "flag-record", // unchanged because flag was set
				LongBreak:  20 * time.Minute,
			},
		},
		{
			name:       "record_location is an alias of record_dir",
			fileConfig: FileConfig{RecordLocation: "/legacy"},
			changed:    map[string]bool{},
			expected:   Config{RecordDir: "/legacy"},
		},
		{
			name:       "record_dir wins over record_location",
			fileConfig: FileConfig{RecordLocation: "/legacy", RecordDir: "/new"},
			changed:    map[string]bool{},
			expected:   Config{RecordDir: "/new"},
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{Pomodoro: "a while"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyFileConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyFileConfig() unexpected error: %v", err)
				return
			}

			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		file    string
		content string
	}{
		{
			file: "config.toml",
			content: `
pomodoro = "50m"
short_break = "10m"
record_name = "my-record"
fresh = true
`,
		},
		{
			file: "config.yaml",
			content: `
pomodoro: 50m
short_break: 10m
record_name: my-record
fresh: true
`,
		},
		{
			file: "config.yml",
			content: `
pomodoro: "50m"
short_break: "10m"
record_name: "my-record"
fresh: true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, tt.file)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create test config file: %v", err)
			}

			fc, err := LoadFileConfig(configPath)
			if err != nil {
				t.Fatalf("LoadFileConfig() error = %v", err)
			}

			if fc.Pomodoro != "50m" {
				t.Errorf("Pomodoro = %v, want 50m", fc.Pomodoro)
			}
			if fc.ShortBreak != "10m" {
				t.Errorf("ShortBreak = %v, want 10m", fc.ShortBreak)
			}
			if fc.RecordName != "my-record" {
				t.Errorf("RecordName = %v, want my-record", fc.RecordName)
			}
			if fc.Fresh == nil || *fc.Fresh != true {
				t.Errorf("Fresh = %v, want true", fc.Fresh)
			}
		})
	}
}

func TestLoadFileConfig_LegacyYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pomo.yaml")
	content := "record_name: history\nrecord_location: /var/pomo\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}
	if cfg.RecordName != "history" || cfg.RecordDir != "/var/pomo" {
		t.Errorf("record = %s/%s, want /var/pomo/history", cfg.RecordDir, cfg.RecordName)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidContent(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"invalid.toml": "pomodoro = \"25m\"\nthis is not valid toml\n",
		"invalid.yaml": "pomodoro: [25m\n",
	}
	for name, content := range files {
		configPath := filepath.Join(tmpDir, name)
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test config file: %v", err)
		}
		if _, err := LoadFileConfig(configPath); err == nil {
			t.Errorf("LoadFileConfig(%s) expected error", name)
		}
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".pomo") {
		t.Errorf("DefaultConfigPath() = %v, should contain .pomo", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
