package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/veldt/browse/internal/browser"
	"github.com/veldt/browse/internal/errors"
	"github.com/veldt/browse/internal/history"
)

var (
	openBrowser    string
	openNewWindow  bool
	openBackground bool
	openPrint      bool
	openCopy       bool
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Open a URL in the default browser",
	Long: `Open a URL in the system's default web browser.

The browser command is resolved in order: --browser, the BROWSER
environment variable, browser.command from the config file, then the
platform default (open, xdg-open, or start).`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openBrowser, "browser", "b", "", "browser command to use instead of the default")
	openCmd.Flags().BoolVarP(&openNewWindow, "new-window", "n", false, "open in a new browser window")
	openCmd.Flags().BoolVarP(&openBackground, "background", "g", false, "open without focusing the browser")
	openCmd.Flags().BoolVarP(&openPrint, "print", "p", false, "print the URL instead of opening it")
	openCmd.Flags().BoolVar(&openCopy, "copy", false, "also copy the URL to the clipboard")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	url := args[0]

	if openPrint {
		if err := browser.ValidateURL(url); err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	}

	if openCopy {
		if err := clipboard.WriteAll(url); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		}
	}

	opts := launchOptions()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ok, err := openURL(ctx, url, opts)
	if err != nil {
		return err
	}

	if !ok {
		return openFailure(url)
	}

	if JSONOutput() {
		out := map[string]interface{}{
			"url":    url,
			"opened": true,
		}
		if opts != nil {
			out["mode"] = opts.Mode.String()
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	if Verbose() {
		fmt.Printf("Opened %s\n", url)
	}

	return nil
}

// launchOptions builds LaunchOptions from flags and config.
// Returns nil when nothing overrides the system-preferred behavior.
func launchOptions() *browser.LaunchOptions {
	mode := browser.ParseLaunchMode(cfg.Browser.Mode)
	if openNewWindow {
		mode = browser.ModeNewWindow
	}
	if openBackground {
		mode = browser.ModeBackground
	}

	command := cfg.Browser.Command
	var extraArgs []string
	if command != "" {
		extraArgs = cfg.Browser.Args
	}
	if openBrowser != "" {
		command = openBrowser
		extraArgs = nil
	}

	if mode == browser.ModeSystemPreferred && command == "" {
		return nil
	}

	return &browser.LaunchOptions{
		Mode:    mode,
		Browser: command,
		Args:    extraArgs,
	}
}

// openURL runs the URL through the browser service and records the outcome.
// History failures are reported on stderr but never fail the open.
func openURL(ctx context.Context, url string, opts *browser.LaunchOptions) (bool, error) {
	svc := browser.NewService(browser.NewExecLauncher())
	ok, err := svc.Open(ctx, url, opts)

	if cfg.History.Enabled && strings.TrimSpace(url) != "" {
		if recErr := recordHistory(url, opts, ok && err == nil); recErr != nil && Verbose() {
			fmt.Fprintf(os.Stderr, "Warning: could not record history: %v\n", recErr)
		}
	}

	return ok, err
}

func recordHistory(url string, opts *browser.LaunchOptions, ok bool) error {
	storage, err := history.NewStorage(cfg.History.File, cfg.History.MaxEntries)
	if err != nil {
		return err
	}

	entry := history.Entry{
		URL:      url,
		OpenedAt: time.Now(),
		OK:       ok,
	}
	if opts != nil {
		entry.Mode = opts.Mode.String()
		entry.Browser = opts.Browser
	}

	return storage.Append(entry)
}

// openFailure explains a false result from the browser service.
func openFailure(url string) error {
	if strings.TrimSpace(url) == "" {
		return errors.ErrEmptyURL
	}
	if err := browser.ValidateURL(url); err != nil {
		return err
	}
	return errors.WithSuggestion(
		fmt.Errorf("browser did not open %q", url),
		"Set the BROWSER environment variable or browser.command in ~/.browserc",
	)
}
