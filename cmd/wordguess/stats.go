package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats [pack]",
	Short: "Show game statistics",
	Long: `Display totals, streaks and the guess distribution of finished games.
Without a pack, every pack is counted.

Examples:
  wordguess stats
  wordguess stats classic --recent 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list the most recent games")
}

func runStats(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	pack := ""
	if len(args) > 0 {
		pack = args[0]
	}

	a := mustApp(ctx)
	defer a.Close()
	if a.store == nil {
		fail("statistics need the scores database")
	}

	st, err := a.store.Stats(ctx, pack)
	if err != nil {
		fail("computing statistics: %v", err)
	}

	title := "all packs"
	if pack != "" {
		title = pack
	}
	fmt.Printf("Statistics - %s\n", title)
	fmt.Println()

	if st.Played == 0 && st.Abandoned == 0 {
		fmt.Println("No games played yet.")
		return
	}

	fmt.Printf("  Played          %d\n", st.Played)
	fmt.Printf("  Abandoned       %d (not counted in streaks)\n", st.Abandoned)
	fmt.Printf("  Won             %d (%.0f%%)\n", st.Won, st.WinRate*100)
	fmt.Printf("  Average guesses %.2f\n", st.AvgGuesses)
	fmt.Printf("  Best score      %d\n", st.BestScore)
	fmt.Printf("  Current streak  %d\n", st.CurrentStreak)
	fmt.Printf("  Max streak      %d\n", st.MaxStreak)
	fmt.Printf("  Last played     %s\n", st.LastPlayed.Local().Format("2006-01-02 15:04"))

	if len(st.Distribution) > 0 {
		fmt.Println()
		fmt.Println("Guess distribution:")
		guesses := lo.Keys(st.Distribution)
		slices.Sort(guesses)
		most := lo.Max(lo.Values(st.Distribution))
		for _, g := range guesses {
			n := st.Distribution[g]
			bar := strings.Repeat("#", max(1, n*30/most))
			fmt.Printf("  %2d  %-30s  %d\n", g, bar, n)
		}
	}

	if flagRecent > 0 {
		recent, err := a.store.RecentGames(ctx, pack, flagRecent)
		if err != nil {
			fail("retrieving games: %v", err)
		}
		fmt.Println()
		fmt.Println("Recent games:")
		for _, g := range recent {
			result := "lost"
			switch {
			case g.Won:
				result = "won"
			case !g.Completed:
				result = "ended"
			}
			fmt.Printf("  %s  %-10s  %-8s  %-5s  %d guesses  %d points\n",
				g.PlayedAt.Local().Format("2006-01-02 15:04"), g.Pack, g.Word, result, g.Guesses, g.Score)
		}
	}
}
