package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlevkov/stacktower/internal/config"
	"github.com/mlevkov/stacktower/internal/platform/tui"
)

var (
	flagServeAddr        string
	flagServeHostKey     string
	flagServeConfig      string
	flagServeDifficulty  string
	flagServeIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an SSH server for remote play",
	Long: `Start an SSH server so anyone can play over the network:

  ssh -p 23234 localhost

Every connecting player gets their own game session. Recorded runs and
the high score are shared server-wide.

Examples:
  stacktower serve
  stacktower serve --ssh :2222 --difficulty hard
  stacktower serve --host-key /etc/stacktower/host_key`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "ssh", ":23234", "Address to listen on")
	serveCmd.Flags().StringVar(&flagServeHostKey, "host-key", "", "Path to the SSH host key (auto-generated if empty)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to a custom tuning YAML")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().DurationVar(&flagServeIdleTimeout, "idle-timeout", 30*time.Minute, "Close idle connections after this long")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagServeAddr
	cfg.HostKeyPath = flagServeHostKey
	cfg.DBPath = flagDBPath
	cfg.StatsPath = flagStatsPath
	cfg.ConfigPath = flagServeConfig
	cfg.IdleTimeout = flagServeIdleTimeout

	if flagServeDifficulty != "" {
		preset := config.DifficultyPreset(flagServeDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			cfg.Difficulty = preset
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagServeDifficulty)
			os.Exit(1)
		}
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
