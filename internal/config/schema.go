package config

// Config is the root configuration structure.
type Config struct {
	Browser BrowserConfig `toml:"browser"`
	History HistoryConfig `toml:"history"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// BrowserConfig holds browser launch settings.
type BrowserConfig struct {
	Command string   `toml:"command"`
	Mode    string   `toml:"mode"`
	Args    []string `toml:"args"`
}

// HistoryConfig holds settings for the open-history log.
type HistoryConfig struct {
	Enabled    bool   `toml:"enabled"`
	File       string `toml:"file"`
	MaxEntries int    `toml:"max_entries"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
