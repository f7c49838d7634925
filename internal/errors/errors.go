package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrEmptyURL            = errors.New("empty url")
	ErrInvalidURL          = errors.New("invalid url")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrNoBrowser           = errors.New("no browser available")
	ErrHistoryDisabled     = errors.New("history is disabled")
	ErrConfigNotFound      = errors.New("config file not found")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// BrowseError wraps an error with a user-friendly suggestion.
type BrowseError struct {
	Err        error
	Suggestion string
}

func (e *BrowseError) Error() string {
	return e.Err.Error()
}

func (e *BrowseError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &BrowseError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a BrowseError with suggestion
	var browseErr *BrowseError
	if errors.As(err, &browseErr) && browseErr.Suggestion != "" {
		return browseErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// URL errors
	if errors.Is(err, ErrEmptyURL) {
		return "Pass a URL to open, e.g. 'browse open https://example.com'"
	}

	if errors.Is(err, ErrInvalidURL) || strings.Contains(errStr, "invalid url") ||
		strings.Contains(errStr, "unsupported scheme") {
		return "URLs must start with http:// or https://"
	}

	// Launcher errors
	if errors.Is(err, ErrNoBrowser) || strings.Contains(errStr, "executable file not found") {
		return "Set the BROWSER environment variable or browser.command in ~/.browserc"
	}

	if errors.Is(err, ErrUnsupportedPlatform) {
		return "Automatic browser launching is only supported on macOS, Linux, and Windows"
	}

	// History errors
	if errors.Is(err, ErrHistoryDisabled) {
		return "Enable history with 'browse config init' and history.enabled = true"
	}

	// Config errors
	if errors.Is(err, ErrConfigNotFound) || strings.Contains(errStr, "config") {
		return "Run 'browse config init' to create a configuration file"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
