// stacktower is a terminal stacking-tower arcade game: a platform sweeps
// left and right on top of the stack, Space freezes it, the overhang is
// cut away, and a narrower platform spawns on top until nothing survives.
//
// Usage:
//
//	stacktower                 - Play in the local terminal
//	stacktower play            - Same, explicitly
//	stacktower scores          - Show the best recorded runs
//	stacktower serve           - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Tick rate (default: 60)
//	--db <path>      - Run-history database (default: ~/.stacktower/runs.db)
//	--stats <path>   - Stats file (default: ~/.stacktower/stats.json)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagStatsPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stacktower",
	Short: "Stacktower - a stacking-tower arcade game for your terminal",
	Long: `Stacktower is a terminal arcade game: freeze the sweeping platform on
top of the stack with Space. Whatever hangs over the edge is cut away and
falls; the survivor becomes the next, narrower platform. Miss completely
and the run is over.

Available commands:
  play     - Play in the local terminal (also the default)
  scores   - View the best recorded runs
  serve    - Start an SSH server for remote play

Examples:
  stacktower
  stacktower play --difficulty hard
  stacktower scores --limit 20
  stacktower serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stacktower/runs.db", "Path to the run-history database")
	rootCmd.PersistentFlags().StringVar(&flagStatsPath, "stats", "~/.stacktower/stats.json", "Path to the stats file")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom tuning YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
