package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	data := `
[browser]
command = "firefox"
mode = "new-window"
args = ["--private-window"]

[history]
enabled = true
max_entries = 50

[ui]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Browser.Command != "firefox" {
		t.Errorf("Browser.Command = %q, want %q", cfg.Browser.Command, "firefox")
	}
	if cfg.Browser.Mode != "new-window" {
		t.Errorf("Browser.Mode = %q, want %q", cfg.Browser.Mode, "new-window")
	}
	if len(cfg.Browser.Args) != 1 || cfg.Browser.Args[0] != "--private-window" {
		t.Errorf("Browser.Args = %v, want [--private-window]", cfg.Browser.Args)
	}
	if cfg.History.MaxEntries != 50 {
		t.Errorf("History.MaxEntries = %d, want 50", cfg.History.MaxEntries)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q, want %q", cfg.UI.Theme, "dark")
	}

	// Defaults still fill unset sections
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default %q", cfg.Log.Level, "info")
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	// Point all config search paths at an empty directory
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, ".config"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.History.Enabled {
		t.Error("History.Enabled = false with no config file, want the default true")
	}
	if cfg.Browser.Mode != "system" {
		t.Errorf("Browser.Mode = %q, want default %q", cfg.Browser.Mode, "system")
	}
	if cfg.History.MaxEntries != 500 {
		t.Errorf("History.MaxEntries = %d, want default 500", cfg.History.MaxEntries)
	}
}

func TestLoadFromKeepsHistoryEnabledByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	// No [history] section at all
	data := `
[browser]
command = "firefox"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if !cfg.History.Enabled {
		t.Error("History.Enabled = false when the config omits [history], want the default true")
	}
}

func TestLoadFromHistoryOptOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	data := `
[history]
enabled = false
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.History.Enabled {
		t.Error("History.Enabled = true, want an explicit enabled = false to stick")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFrom() error = nil, want error for missing file")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Browser.Mode != "system" {
		t.Errorf("Browser.Mode = %q, want %q", cfg.Browser.Mode, "system")
	}
	if cfg.History.MaxEntries != 500 {
		t.Errorf("History.MaxEntries = %d, want 500", cfg.History.MaxEntries)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("UI.Theme = %q, want %q", cfg.UI.Theme, "auto")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BROWSE_BROWSER", "chromium")
	t.Setenv("BROWSE_MODE", "background")
	t.Setenv("BROWSE_HISTORY_MAX", "25")
	t.Setenv("BROWSE_UI_THEME", "light")

	cfg := &Config{}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if cfg.Browser.Command != "chromium" {
		t.Errorf("Browser.Command = %q, want %q", cfg.Browser.Command, "chromium")
	}
	if cfg.Browser.Mode != "background" {
		t.Errorf("Browser.Mode = %q, want %q", cfg.Browser.Mode, "background")
	}
	if cfg.History.MaxEntries != 25 {
		t.Errorf("History.MaxEntries = %d, want 25", cfg.History.MaxEntries)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("UI.Theme = %q, want %q", cfg.UI.Theme, "light")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad mode", func(c *Config) { c.Browser.Mode = "kiosk" }, true},
		{"args without command", func(c *Config) { c.Browser.Args = []string{"-x"} }, true},
		{"args with command", func(c *Config) {
			c.Browser.Command = "firefox"
			c.Browser.Args = []string{"-x"}
		}, false},
		{"negative max entries", func(c *Config) { c.History.MaxEntries = -1 }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() error = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}
