package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordguess/internal/platform/tui"
	"github.com/vovakirdan/wordguess/internal/router"
)

var (
	flagWordsFile  string
	flagDifficulty string
	flagOpen       string
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a game",
	Long: `Start playing with the given word pack (default from config: classic).

Controls:
  Enter      - Submit guess
  Ctrl+T     - Reveal a letter (costs points)
  Ctrl+R     - New word
  Ctrl+E     - End the game
  Esc        - Clear input / back
  Ctrl+C     - Quit

Difficulty options:
  easy   - 8 guesses, 4 cheaper hints
  normal - 6 guesses, 3 hints
  hard   - 5 guesses, 2 expensive hints
  fixed  - Rules exactly as configured

Examples:
  wordguess play
  wordguess play short
  wordguess play --difficulty hard
  wordguess play --words ./my-words.txt
  wordguess play --open wordguess://game/new`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagWordsFile, "words", "", "Path to a word list (.txt or .yaml) to play instead of a pack")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagOpen, "open", "", "wordguess:// link to open on start")
}

func runPlay(cmd *cobra.Command, args []string) {
	packID := ""
	if len(args) > 0 {
		packID = args[0]
	}

	var route *router.Route
	if flagOpen != "" {
		r, err := router.Parse(flagOpen)
		if err != nil {
			fail("%v", err)
		}
		route = &r
	}

	playGame(cmd.Context(), packID, route)
}

// playGame runs one TUI session and exits on failure.
func playGame(ctx context.Context, packID string, route *router.Route) {
	a := mustApp(ctx)
	err := runGame(ctx, a, packID, route)
	a.Close()
	if err != nil {
		fail("%v", err)
	}
}

// runGame builds a model for the pack, applies route and runs it.
func runGame(ctx context.Context, a *app, packID string, route *router.Route) error {
	rules, err := a.rules(flagDifficulty)
	if err != nil {
		return err
	}
	wordsFile := flagWordsFile
	if wordsFile == "" && packID == "" {
		wordsFile = a.cfg.WordsFile
	}
	deps, err := a.deps(ctx, packID, wordsFile, rules)
	if err != nil {
		if packID != "" {
			fmt.Fprintln(os.Stderr, "Run 'wordguess list' to see available packs.")
		}
		return err
	}

	model, err := tui.NewModel(deps, runtimeConfig())
	if err != nil {
		return err
	}
	if route != nil {
		model = model.Navigate(*route)
	}

	if err := tui.Run(model); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
