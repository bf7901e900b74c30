package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide15/internal/config"
	"github.com/vovakirdan/slide15/internal/core"
	"github.com/vovakirdan/slide15/internal/games/puzzle15"
	"github.com/vovakirdan/slide15/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start the puzzle in the terminal.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Z/X    - Slide the tile under the cursor
  Enter        - Start / play again after solving
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  slide15 play
  slide15 play --seed 42
  slide15 play --config ./my-slide15.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	// Warn early; the UI shows its own notice until the window is resized.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tui.MinWidth || h < tui.MinHeight {
			logger.Warn("terminal too small", "width", w, "height", h, "need_width", tui.MinWidth, "need_height", tui.MinHeight)
		}
	}

	game := puzzle15.New(cfg.Gameplay, logger)
	runErr := tui.Run(game, tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	})

	logger.Info("exiting", "phase", game.Phase(), "sessions", game.Snapshot().Sessions)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
