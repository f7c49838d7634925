package browser

import "context"

// LaunchMode controls how the browser window is opened.
type LaunchMode int

const (
	// ModeSystemPreferred lets the platform decide how to present the page.
	ModeSystemPreferred LaunchMode = iota

	// ModeNewWindow requests a fresh browser window.
	ModeNewWindow

	// ModeBackground opens the page without stealing focus.
	ModeBackground
)

// String returns the config/CLI name of the mode.
func (m LaunchMode) String() string {
	switch m {
	case ModeNewWindow:
		return "new-window"
	case ModeBackground:
		return "background"
	default:
		return "system"
	}
}

// ParseLaunchMode converts a config/CLI value to a LaunchMode.
// Unknown values fall back to ModeSystemPreferred.
func ParseLaunchMode(s string) LaunchMode {
	switch s {
	case "new-window":
		return ModeNewWindow
	case "background":
		return ModeBackground
	default:
		return ModeSystemPreferred
	}
}

// LaunchOptions customizes how a URL is opened. A nil *LaunchOptions means
// "use the system-preferred launch mode with the default browser".
type LaunchOptions struct {
	// Mode selects the window behavior, where the platform supports it.
	Mode LaunchMode

	// Browser overrides the platform's default browser command.
	Browser string

	// Args are passed verbatim to the browser command before the URL.
	Args []string
}

// Launcher abstracts the platform facility that opens the default browser.
// Implementations report whether the page was handed off to a browser, and
// fail with errors.ErrInvalidURL when the URL is not one they can open.
type Launcher interface {
	OpenDefault(ctx context.Context, url string, opts *LaunchOptions) (bool, error)
}
