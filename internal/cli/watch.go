package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/veldt/browse/internal/watch"
)

var watchInterval int

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a file and open URLs appended to it",
	Long: `Polls a file of URLs (one per line) and opens each newly appended
URL in the browser. Blank lines and lines starting with # are ignored.
URLs already in the file when watching starts are skipped.

Useful for wiring browse to tools that emit links, e.g.:
  some-tool --emit-links >> links.txt &
  browse watch links.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 1000, "poll interval in milliseconds")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	interval := time.Duration(watchInterval) * time.Millisecond
	watcher := watch.NewWatcher(args[0], interval)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- watcher.Start(ctx) }()

	if !JSONOutput() {
		fmt.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	}

	opts := launchOptions()

	for {
		select {
		case ev, open := <-watcher.Events():
			if !open {
				err := <-errCh
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

			ok, err := openURL(ctx, ev.URL, opts)

			if JSONOutput() {
				_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"url":    ev.URL,
					"opened": ok && err == nil,
				})
				continue
			}

			switch {
			case err != nil:
				fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", ev.URL, err)
			case !ok:
				fmt.Fprintf(os.Stderr, "Could not open %s\n", ev.URL)
			default:
				fmt.Printf("Opened %s\n", ev.URL)
			}

		case <-ctx.Done():
			watcher.Stop()
			<-errCh
			return nil
		}
	}
}
