package cli

import (
	"github.com/spf13/cobra"
	"github.com/veldt/browse/internal/browser"
	"github.com/veldt/browse/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch interactive history browser",
	Long: `Launch the interactive terminal history browser.

Keyboard shortcuts:
  q, Ctrl+C    Quit
  /            Filter
  Enter        Open selection
  j/k, ↑/↓     Move
  r            Reload`,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	storage, err := historyStorage()
	if err != nil {
		return err
	}

	svc := browser.NewService(browser.NewExecLauncher())
	return tui.Run(svc, storage, launchOptions())
}
