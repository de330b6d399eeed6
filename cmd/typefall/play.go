package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/platform/tui"
)

var (
	flagLevel  int
	flagConfig string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Practice typing",
	Long: `Start a practice session. Without --level the mode menu opens first.

Modes:
  1 - Uppercase letters (A-Z)
  2 - Lowercase letters (a-z)
  3 - Pinyin syllables

Controls:
  1/2/3      - Start a mode (menu)
  typing     - Match the topmost falling target
  Esc        - End the session and save the score
  Ctrl+C     - Quit (a running session is saved first)

Examples:
  typefall play
  typefall play --level 2
  typefall play --config ./my-typing.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly in this mode (1-3, 0 = menu)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}
	if flagLevel != 0 {
		if _, err := game.ParseMode(flagLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("could not open score log", "error", err)
		// Continue without persistence - practice still works
		store = nil
	}

	if err := tui.Run(store, cfg, rc, flagLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}
}
