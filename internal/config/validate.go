package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Browser.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("browser: %w", err))
	}
	if err := c.History.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("history: %w", err))
	}
	if err := c.UI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks BrowserConfig for errors.
func (c *BrowserConfig) Validate() error {
	switch c.Mode {
	case "", "system", "new-window", "background":
		// valid
	default:
		return fmt.Errorf("invalid mode: %s (must be system, new-window, or background)", c.Mode)
	}
	if len(c.Args) > 0 && c.Command == "" {
		return errors.New("args requires command to be set")
	}
	return nil
}

// Validate checks HistoryConfig for errors.
func (c *HistoryConfig) Validate() error {
	if c.MaxEntries < 0 {
		return errors.New("max_entries must be non-negative")
	}
	return nil
}

// Validate checks UIConfig for errors.
func (c *UIConfig) Validate() error {
	switch c.Theme {
	case "", "auto", "dark", "light":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be auto, dark, or light)", c.Theme)
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
