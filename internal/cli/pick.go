package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/veldt/browse/internal/errors"
	"golang.org/x/term"
)

var pickLimit int

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a URL from history and reopen it",
	Long:  `Shows a picker over recently opened URLs and opens the selection.`,
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().IntVarP(&pickLimit, "limit", "l", 20, "maximum number of entries to choose from")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.WithSuggestion(
			fmt.Errorf("pick requires an interactive terminal"),
			"Use 'browse history --json' to script over history instead",
		)
	}

	storage, err := historyStorage()
	if err != nil {
		return err
	}

	entries, err := storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No history yet. Open something first: browse open <url>")
		return nil
	}

	if pickLimit > 0 && len(entries) > pickLimit {
		entries = entries[:pickLimit]
	}

	// De-duplicate while preserving newest-first order
	seen := make(map[string]bool)
	var options []huh.Option[string]
	for _, e := range entries {
		if seen[e.URL] {
			continue
		}
		seen[e.URL] = true
		options = append(options, huh.NewOption(TruncateString(e.URL, 72), e.URL))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Reopen a URL").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("selection cancelled: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ok, err := openURL(ctx, selected, launchOptions())
	if err != nil {
		return err
	}
	if !ok {
		return openFailure(selected)
	}

	fmt.Printf("Opened %s\n", selected)
	return nil
}
