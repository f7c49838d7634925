package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultFileName is the default name for the history file.
	DefaultFileName = "history.json"

	// DefaultMaxEntries caps the history length when no limit is configured.
	DefaultMaxEntries = 500
)

// Entry records a single browser launch.
type Entry struct {
	URL      string    `json:"url"`
	OpenedAt time.Time `json:"opened_at"`
	Mode     string    `json:"mode,omitempty"`
	Browser  string    `json:"browser,omitempty"`
	OK       bool      `json:"ok"`
}

// Storage handles persisting open history to disk.
type Storage struct {
	path       string
	maxEntries int
}

// NewStorage creates history storage at the specified path.
// If path is empty, uses the default location (~/.config/browse/history.json).
func NewStorage(path string, maxEntries int) (*Storage, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		path = filepath.Join(configDir, "browse", DefaultFileName)
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Storage{path: path, maxEntries: maxEntries}, nil
}

// Append records an entry at the head of the history, trimming to the cap.
func (s *Storage) Append(entry Entry) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}

	entries = append([]Entry{entry}, entries...)
	if len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}

	return s.save(entries)
}

// Load reads all history entries, newest first.
// A missing file is an empty history, not an error.
func (s *Storage) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}

	return entries, nil
}

// save persists entries to disk with owner-only permissions.
func (s *Storage) save(entries []Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	return nil
}

// Clear removes the stored history.
func (s *Storage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete history file: %w", err)
	}
	return nil
}

// Exists returns true if a history file exists.
func (s *Storage) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Path returns the path to the history file.
func (s *Storage) Path() string {
	return s.path
}
