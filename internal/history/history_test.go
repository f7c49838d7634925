package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "history.json")

	storage, err := NewStorage(path, 10)
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}

	// Initially should not exist
	if storage.Exists() {
		t.Error("Exists() = true, want false for new storage")
	}

	// Load should return empty for non-existent history
	entries, err := storage.Load()
	if err != nil {
		t.Errorf("Load() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load() returned %d entries, want 0", len(entries))
	}

	// Append an entry
	entry := Entry{
		URL:      "https://example.com",
		OpenedAt: time.Now(),
		Mode:     "system",
		OK:       true,
	}

	if err := storage.Append(entry); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if !storage.Exists() {
		t.Error("Exists() = false after append, want true")
	}

	loaded, err := storage.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("Load() returned %d entries, want 1", len(loaded))
	}
	if loaded[0].URL != entry.URL {
		t.Errorf("URL = %q, want %q", loaded[0].URL, entry.URL)
	}
	if !loaded[0].OK {
		t.Error("OK = false, want true")
	}

	// Verify file permissions
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("File permissions = %o, want 0600", mode)
	}

	// Clear should remove the history
	if err := storage.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if storage.Exists() {
		t.Error("Exists() = true after clear, want false")
	}
}

func TestStorageNewestFirst(t *testing.T) {
	storage, err := NewStorage(filepath.Join(t.TempDir(), "history.json"), 10)
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}

	for _, url := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		if err := storage.Append(Entry{URL: url, OpenedAt: time.Now()}); err != nil {
			t.Fatalf("Append(%q) error = %v", url, err)
		}
	}

	entries, err := storage.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"https://c.example", "https://b.example", "https://a.example"}
	if len(entries) != len(want) {
		t.Fatalf("Load() returned %d entries, want %d", len(entries), len(want))
	}
	for i, url := range want {
		if entries[i].URL != url {
			t.Errorf("entries[%d].URL = %q, want %q", i, entries[i].URL, url)
		}
	}
}

func TestStorageTrimsToMaxEntries(t *testing.T) {
	storage, err := NewStorage(filepath.Join(t.TempDir(), "history.json"), 3)
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		entry := Entry{URL: "https://example.com", OpenedAt: time.Now()}
		if err := storage.Append(entry); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	entries, err := storage.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Load() returned %d entries, want 3 after trimming", len(entries))
	}
}

func TestStorageNestedDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.json")

	storage, err := NewStorage(path, 10)
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}

	// Should create nested directories
	if err := storage.Append(Entry{URL: "https://example.com"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if !storage.Exists() {
		t.Error("History file not created in nested directory")
	}
}

func TestStorageClearNonExistent(t *testing.T) {
	storage, err := NewStorage(filepath.Join(t.TempDir(), "nonexistent.json"), 10)
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}

	// Clear on non-existent file should not error
	if err := storage.Clear(); err != nil {
		t.Errorf("Clear() on non-existent file error = %v", err)
	}
}

func TestStoragePath(t *testing.T) {
	path := "/custom/path/history.json"
	storage, err := NewStorage(path, 10)
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}

	if storage.Path() != path {
		t.Errorf("Path() = %q, want %q", storage.Path(), path)
	}
}
