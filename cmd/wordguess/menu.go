package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordguess/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a word pack picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a pack.
After quitting a game, you return to the menu to pick again.

Press q or Esc in the menu to exit.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	a := mustApp(ctx)
	defer a.Close()

	current := a.cfg.Pack
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			return
		}
		if result.Quit {
			return
		}
		cfg = result.Config
		current = result.PackID

		if err := runGame(ctx, a, current, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}
}
