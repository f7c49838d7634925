package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/veldt/browse/internal/errors"
	"github.com/veldt/browse/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently opened URLs",
	Long:  `Lists the URLs most recently opened with browse, newest first.`,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the open history",
	Long:  `Removes the stored open history from the local machine.`,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func historyStorage() (*history.Storage, error) {
	if !cfg.History.Enabled {
		return nil, errors.ErrHistoryDisabled
	}
	return history.NewStorage(cfg.History.File, cfg.History.MaxEntries)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	storage, err := historyStorage()
	if err != nil {
		return err
	}

	entries, err := storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}

	if JSONOutput() {
		if entries == nil {
			entries = []history.Entry{}
		}
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	table := NewTable("", "URL", "WHEN")
	for _, e := range entries {
		table.Row(
			StatusIcon(e.OK),
			TruncateString(e.URL, 72),
			humanize.Time(e.OpenedAt),
		)
	}
	table.Flush()

	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	storage, err := historyStorage()
	if err != nil {
		return err
	}

	if !storage.Exists() {
		if JSONOutput() {
			return json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "empty"})
		}
		fmt.Println("No history to clear.")
		return nil
	}

	if err := storage.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "cleared"})
	}
	fmt.Println("History cleared.")
	return nil
}
