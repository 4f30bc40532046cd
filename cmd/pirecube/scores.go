package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GauBen/le-pire-cube/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the local leaderboard",
	Long: `Display the top 10 runs recorded on this machine.

Examples:
  pirecube scores
  pirecube scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Le Pire Cube")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pirecube play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "Rank", "Score", "Level", "Duration", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %s\n", "----", "-----", "-----", "--------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-10s  %s\n",
			i+1, entry.Score, entry.Level, fmt.Sprintf("%.1fs", entry.Duration), dateStr)
	}

	fmt.Println()
	stats, err := store.Stats()
	if err == nil {
		fmt.Printf("Best: %d\n", stats.HighScore)
		fmt.Printf("Runs: %d  Average score: %.1f\n", stats.RunsCount, stats.AvgScore)
	}
}
