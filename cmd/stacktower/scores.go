package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mlevkov/stacktower/internal/platform/tui"
	"github.com/mlevkov/stacktower/internal/stats"
	"github.com/mlevkov/stacktower/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Print the best recorded runs from the run-history database, together
with the stats file's high score and play count.

Examples:
  stacktower scores
  stacktower scores --limit 20
  stacktower scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse the run history in a TUI table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	st := stats.NewFileStore(flagStatsPath).Load()
	fmt.Printf("High score: %d   Games played: %d\n\n", st.HighScore, st.GamesPlayed)

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Play a game first!")
		return
	}

	fmt.Printf("%-6s %-8s %s\n", "Rank", "Level", "Date")
	fmt.Println("------------------------------------")
	for i, run := range runs {
		fmt.Printf("%-6d %-8d %s\n", i+1, run.Level, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	summary, err := store.Summarize()
	if err == nil && summary.Runs > 0 {
		fmt.Printf("\nRuns: %d   Best: %d   Avg: %.1f\n", summary.Runs, summary.BestLevel, summary.AvgLevel)
	}
}
