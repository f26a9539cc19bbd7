package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mlevkov/stacktower/internal/config"
	"github.com/mlevkov/stacktower/internal/core"
	"github.com/mlevkov/stacktower/internal/game"
	"github.com/mlevkov/stacktower/internal/platform/tui"
	"github.com/mlevkov/stacktower/internal/stats"
	"github.com/mlevkov/stacktower/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the local terminal.

Controls:
  Enter      - Start from the menu
  Space      - Freeze the moving platform
  S          - Settings (from the menu)
  Esc        - Leave settings
  Q          - Quit (from the menu)
  Ctrl+C     - Quit anytime

Difficulty options:
  easy   - Wider starting platform, slower sweep
  normal - Default tuning
  hard   - Narrower platform, faster sweep
  fixed  - No acceleration between levels

Examples:
  stacktower play
  stacktower play --difficulty hard
  stacktower play --config ./my-tuning.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&gameCfg, preset)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open the run-history store; the game works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	logger := log.New(os.Stderr)
	session := game.NewSession(gameCfg, stats.NewFileStore(flagStatsPath), logger)
	if store != nil {
		session.SetRecorder(store)
	}

	runErr := tui.Run(session, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
