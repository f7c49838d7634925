package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	browseerr "github.com/veldt/browse/internal/errors"
)

// ExecLauncher opens URLs with the operating system's browser-launch command.
// It implements Launcher.
type ExecLauncher struct{}

// NewExecLauncher creates a launcher for the current platform.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// OpenDefault validates url and hands it to the platform's default browser.
// The launched process is not waited on.
func (l *ExecLauncher) OpenDefault(ctx context.Context, url string, opts *LaunchOptions) (bool, error) {
	if err := ValidateURL(url); err != nil {
		return false, err
	}

	cmd, err := commandForOS(ctx, runtime.GOOS, url, opts)
	if err != nil {
		return false, err
	}

	if err := cmd.Start(); err != nil {
		return false, fmt.Errorf("%w: %v", browseerr.ErrNoBrowser, err)
	}

	return true, nil
}

// commandForOS builds the browser-launch command for the given GOOS.
// Split out from OpenDefault so tests can inspect commands without
// executing anything.
func commandForOS(ctx context.Context, goos, url string, opts *LaunchOptions) (*exec.Cmd, error) {
	if cmd := overrideCommand(ctx, url, opts); cmd != nil {
		return cmd, nil
	}

	switch goos {
	case "darwin":
		args := []string{}
		if opts != nil {
			switch opts.Mode {
			case ModeNewWindow:
				args = append(args, "-n")
			case ModeBackground:
				args = append(args, "-g")
			}
		}
		args = append(args, url)
		return exec.CommandContext(ctx, "open", args...), nil
	case "linux":
		// xdg-open has no window-mode flags; modes are best-effort only.
		return exec.CommandContext(ctx, "xdg-open", url), nil
	case "windows":
		// cmd.exe treats & as a command separator, so escape it.
		escaped := strings.ReplaceAll(url, "&", "^&")
		return exec.CommandContext(ctx, "cmd", "/c", "start", escaped), nil
	default:
		return nil, fmt.Errorf("%w: %s", browseerr.ErrUnsupportedPlatform, goos)
	}
}

// overrideCommand returns a command for an explicitly configured browser,
// or nil when no override applies. Precedence: opts.Browser, then $BROWSER.
func overrideCommand(ctx context.Context, url string, opts *LaunchOptions) *exec.Cmd {
	var name string
	var extra []string

	if opts != nil && opts.Browser != "" {
		name = opts.Browser
		extra = opts.Args
	} else if env := os.Getenv("BROWSER"); env != "" {
		name = env
	}

	if name == "" {
		return nil
	}

	args := append(append([]string{}, extra...), url)
	return exec.CommandContext(ctx, name, args...)
}
