package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lightcycle/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show ranked match history",
	Long: `Display the top matches, ranked by player 1 score, then player 2
score, then shortest duration.

Examples:
  lightcycle scores
  lightcycle scores --limit 50`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 20, "How many matches to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	matches, err := store.TopMatches(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lightcycle play duel' to record the first match!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-7s  %-7s  %-12s  %-8s  %s\n",
		"Rank", "Mode", "AI", "Score", "Rounds", "Winner", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-7s  %-7s  %-12s  %-8s  %s\n",
		"----", "----", "--", "-----", "------", "------", "----", "----")

	for i, e := range matches {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		score := fmt.Sprintf("%d : %d", e.Score1, e.Score2)
		fmt.Printf("  %-4d  %-12s  %-8s  %-7s  %-7d  %-12s  %-8s  %s\n",
			i+1, e.Mode, e.Difficulty, score, e.Rounds, e.Winner,
			fmt.Sprintf("%.0fs", e.DurationSecs), dateStr)
	}
}
