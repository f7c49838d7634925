package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/veldt/browse/internal/browser"
	"github.com/veldt/browse/internal/history"
	"github.com/veldt/browse/internal/tui/styles"
)

const openTimeout = 5 * time.Second

// App holds the TUI application dependencies.
type App struct {
	service *browser.Service
	storage *history.Storage
	opts    *browser.LaunchOptions
}

// NewApp creates a new TUI application over the given service and history.
func NewApp(service *browser.Service, storage *history.Storage, opts *browser.LaunchOptions) *App {
	return &App{
		service: service,
		storage: storage,
		opts:    opts,
	}
}

// Model is the main TUI model
type Model struct {
	app    *App
	width  int
	height int

	// State
	entries  []history.Entry
	filtered []int
	cursor   int
	status   string
	lastErr  error

	// Filter state
	filterInput textinput.Model
	filtering   bool

	// Quit flag
	quitting bool
}

// NewModel creates a new TUI model
func NewModel(app *App) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter URLs..."
	ti.CharLimit = 100
	ti.Width = 50

	return Model{
		app:         app,
		filterInput: ti,
	}
}

// Messages
type historyLoadedMsg []history.Entry
type openedMsg struct {
	url string
	ok  bool
	err error
}
type errMsg error

// Commands
func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.app.storage.Load()
		if err != nil {
			return errMsg(err)
		}
		return historyLoadedMsg(entries)
	}
}

func (m Model) openSelection() tea.Cmd {
	entry, ok := m.selected()
	if !ok {
		return nil
	}

	url := entry.URL
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()

		opened, err := m.app.service.Open(ctx, url, m.app.opts)

		rec := history.Entry{URL: url, OpenedAt: time.Now(), OK: opened && err == nil}
		if m.app.opts != nil {
			rec.Mode = m.app.opts.Mode.String()
			rec.Browser = m.app.opts.Browser
		}
		_ = m.app.storage.Append(rec)

		return openedMsg{url: url, ok: opened, err: err}
	}
}

// selected returns the entry under the cursor.
func (m Model) selected() (history.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return history.Entry{}, false
	}
	return m.entries[m.filtered[m.cursor]], true
}

// applyFilter recomputes the filtered index list from the filter input.
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))

	m.filtered = m.filtered[:0]
	for i, e := range m.entries {
		if query == "" || strings.Contains(strings.ToLower(e.URL), query) {
			m.filtered = append(m.filtered, i)
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadHistory()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case historyLoadedMsg:
		m.entries = msg
		m.applyFilter()
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			m.status = ""
		} else if msg.ok {
			m.lastErr = nil
			m.status = fmt.Sprintf("Opened %s", msg.url)
		} else {
			m.lastErr = nil
			m.status = fmt.Sprintf("Could not open %s", msg.url)
		}
		return m, m.loadHistory()

	case errMsg:
		m.lastErr = msg
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.applyFilter()
			return m, nil
		case "enter":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.applyFilter()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil

	case "g":
		m.cursor = 0
		return m, nil

	case "G":
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		}
		return m, nil

	case "enter":
		return m, m.openSelection()

	case "r":
		return m, m.loadHistory()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := styles.Title.Render("browse history")

	var filter string
	if m.filtering {
		filter = m.filterInput.View()
	} else if m.filterInput.Value() != "" {
		filter = styles.Muted.Render("filter: " + m.filterInput.Value())
	}

	list := m.renderList()

	var status string
	switch {
	case m.lastErr != nil:
		status = styles.Failed.Render("Error: " + m.lastErr.Error())
	case m.status != "":
		status = styles.Opened.Render(m.status)
	default:
		status = styles.StatusBar.Render("enter: open  /: filter  r: reload  q: quit")
	}

	sections := []string{title}
	if filter != "" {
		sections = append(sections, filter)
	}
	sections = append(sections, list, status)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderList() string {
	if len(m.filtered) == 0 {
		return styles.Panel.Render(styles.Muted.Render("No history yet"))
	}

	maxLines := m.height - 6
	if maxLines < 1 {
		maxLines = 10
	}

	width := m.width - 6
	if width < 20 {
		width = 60
	}

	var lines []string
	for i, idx := range m.filtered {
		if i >= maxLines {
			lines = append(lines, styles.Dim.Render(fmt.Sprintf("… %d more", len(m.filtered)-maxLines)))
			break
		}

		e := m.entries[idx]

		icon := styles.Opened.Render("●")
		if !e.OK {
			icon = styles.Failed.Render("○")
		}

		age := humanize.Time(e.OpenedAt)
		url := truncate(e.URL, width-len(age)-6)

		line := fmt.Sprintf("%s %s %s", icon, url, styles.Dim.Render(age))
		if i == m.cursor {
			line = styles.Highlight.Render("> ") + line
		} else {
			line = "  " + line
		}

		lines = append(lines, line)
	}

	return styles.Panel.Render(strings.Join(lines, "\n"))
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 {
		maxLen = 4
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// Run starts the TUI.
func Run(service *browser.Service, storage *history.Storage, opts *browser.LaunchOptions) error {
	app := NewApp(service, storage, opts)
	p := tea.NewProgram(NewModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
