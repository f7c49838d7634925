package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Browser: BrowserConfig{
			Mode: "system",
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 500,
		},
		UI: UIConfig{
			Theme: "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Browser
	if c.Browser.Mode == "" {
		c.Browser.Mode = d.Browser.Mode
	}

	// History
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = d.History.MaxEntries
	}

	// UI
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
