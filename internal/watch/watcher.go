package watch

import (
	"bufio"
	"context"
	"os"
	"strings"
	"time"
)

// Event represents a URL appended to the watched file.
type Event struct {
	URL       string
	Timestamp time.Time
}

// Watcher polls a file of URLs (one per line) and emits the new ones.
// Lines starting with # and blank lines are ignored.
type Watcher struct {
	path     string
	interval time.Duration
	events   chan Event
	done     chan struct{}
}

// NewWatcher creates a watcher over path.
func NewWatcher(path string, interval time.Duration) *Watcher {
	if interval == 0 {
		interval = time.Second
	}
	return &Watcher{
		path:     path,
		interval: interval,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
}

// Events returns the channel of new-URL events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins polling for new lines. It blocks until the context is
// cancelled or Stop is called, and closes the events channel on return.
// URLs already in the file when polling starts are not emitted.
func (w *Watcher) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.events)

	seen, err := readLines(w.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	offset := len(seen)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-ticker.C:
			lines, err := readLines(w.path)
			if err != nil {
				continue
			}

			// A truncated file restarts the stream
			if len(lines) < offset {
				offset = 0
			}

			for _, line := range lines[offset:] {
				select {
				case w.events <- Event{URL: line, Timestamp: time.Now()}:
				case <-ctx.Done():
					return ctx.Err()
				case <-w.done:
					return nil
				}
			}
			offset = len(lines)
		}
	}
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.done)
}

// readLines returns the non-blank, non-comment lines of the file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines, scanner.Err()
}
