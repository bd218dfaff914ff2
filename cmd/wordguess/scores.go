package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best scores of the configured leaderboard backend.

Examples:
  wordguess scores
  wordguess scores --limit 3
  wordguess scores --leaderboard redis --redis localhost:6379
  wordguess scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 0, "Number of scores to show (0 = whole board)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Remove every score")
}

func runScores(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	a := mustApp(ctx)
	defer a.Close()

	if flagScoresClear {
		if err := a.board.Clear(ctx); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := a.board.Top(ctx, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wordguess play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-6s  %-10s  %-7s  %s\n", "Rank", "Name", "Score", "Word", "Guesses", "Date")
	fmt.Printf("  %-4s  %-20s  %-6s  %-10s  %-7s  %s\n", "----", "----", "-----", "----", "-------", "----")

	for i, e := range scores {
		dateStr := e.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-6d  %-10s  %-7d  %s\n", i+1, e.Name, e.Score, e.Word, e.Guesses, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
}
