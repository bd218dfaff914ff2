package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordguess/internal/router"
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Open a wordguess:// link",
	Long: `Open a deep link and start the game on the linked screen.

Links:
  wordguess://game              - Open the game
  wordguess://game/new          - Start a new game
  wordguess://game?word=SWIFT   - Start a new game, mentioning the word
  wordguess://leaderboard       - Show the leaderboard

Links with an unknown path still open the game with a notice.`,
	Args: cobra.ExactArgs(1),
	Run:  runOpen,
}

func runOpen(cmd *cobra.Command, args []string) {
	route, err := router.Parse(args[0])
	switch {
	case errors.Is(err, router.ErrUnknownScheme):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Examples:")
		for _, ex := range router.Examples {
			fmt.Fprintf(os.Stderr, "  %-28s %s\n", ex.URL, ex.Title)
		}
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	playGame(cmd.Context(), "", &route)
}
