package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.browserc, $XDG_CONFIG_HOME/browse/config.toml, ~/.config/browse/config.toml
func Load() (*Config, error) {
	// Start from defaults so absent keys keep their default values;
	// boolean defaults like history.enabled are invisible to ApplyDefaults.
	cfg := Default()

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".browserc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "browse", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Browser
	if v := os.Getenv("BROWSE_BROWSER"); v != "" {
		cfg.Browser.Command = v
	}
	if v := os.Getenv("BROWSE_MODE"); v != "" {
		cfg.Browser.Mode = v
	}

	// History
	if v := os.Getenv("BROWSE_HISTORY_FILE"); v != "" {
		cfg.History.File = v
	}
	if v := os.Getenv("BROWSE_HISTORY_MAX"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.History.MaxEntries = i
		}
	}

	// UI
	if v := os.Getenv("BROWSE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	// Log
	if v := os.Getenv("BROWSE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BROWSE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
