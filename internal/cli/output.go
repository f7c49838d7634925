package cli

import (
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
)

// Table provides a simple table formatter.
type Table struct {
	w       *tabwriter.Writer
	headers []string
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return NewTableWriter(os.Stdout, headers...)
}

// NewTableWriter creates a table writing to a specific writer.
func NewTableWriter(out io.Writer, headers ...string) *Table {
	t := &Table{
		w:       tabwriter.NewWriter(out, 0, 0, 2, ' ', 0),
		headers: headers,
	}
	if len(headers) > 0 {
		_, _ = t.w.Write([]byte(strings.Join(headers, "\t") + "\n"))
	}
	return t
}

// Row adds a row to the table.
func (t *Table) Row(values ...string) {
	_, _ = t.w.Write([]byte(strings.Join(values, "\t") + "\n"))
}

// Flush writes the table output.
func (t *Table) Flush() {
	_ = t.w.Flush()
}

// StatusIcon returns an icon for the given boolean status.
func StatusIcon(ok bool) string {
	if ok {
		return "●"
	}
	return "○"
}

// TruncateString truncates a string to maxLen display cells, adding "..."
// if truncated. Truncation is rune-aware so multi-byte URLs are never cut
// mid-character.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}
