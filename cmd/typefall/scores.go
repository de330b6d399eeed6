package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/scores"
)

var flagLast int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recent sessions and per-mode statistics",
	Long: `Display the most recent practice sessions followed by lifetime
statistics for each mode.

Examples:
  typefall scores
  typefall scores --last 20`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLast, "last", 10, "Number of recent sessions to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score log: %v\n", err)
		os.Exit(1)
	}
	records, err := store.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading score log: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'typefall play' to log your first session!")
		return
	}

	recent := records
	if flagLast > 0 && len(recent) > flagLast {
		recent = recent[len(recent)-flagLast:]
	}

	fmt.Printf("Recent sessions (last %d)\n\n", len(recent))
	fmt.Printf("  %-19s  %-10s  %-6s  %-8s  %s\n", "Date", "Mode", "Score", "Duration", "Completed")
	fmt.Printf("  %-19s  %-10s  %-6s  %-8s  %s\n", "----", "----", "-----", "--------", "---------")
	for i := len(recent) - 1; i >= 0; i-- {
		r := recent[i]
		fmt.Printf("  %-19s  %-10s  %-6d  %-8s  %d\n",
			r.Timestamp.Format("2006-01-02 15:04"),
			r.Mode,
			r.Score,
			fmt.Sprintf("%ds", r.DurationSec),
			r.Completed)
	}

	fmt.Println()
	fmt.Println("Per-mode statistics")
	fmt.Println()

	stats := scores.Summaries(records, flagLast)
	for _, mode := range game.Modes() {
		s := stats[mode.Level()]
		fmt.Printf("  %-18s  sessions %-5d  best %-5d  avg(last %d) %d\n",
			mode.Title(), s.Count, s.Best, flagLast, s.RecentAvg)
	}
}
