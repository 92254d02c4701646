package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antidote-run/internal/config"
	"github.com/vovakirdan/antidote-run/internal/platform/tui"
	"github.com/vovakirdan/antidote-run/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (antidote when omitted).

Controls:
  A/D, Left/Right  - Move
  Space/Up/W       - Jump
  F/J/Enter        - Fire
  P/Esc            - Pause
  R                - Restart (after game over or win)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  antidote play
  antidote play survival --difficulty hard
  antidote play bounty --seed 42
  antidote play --config ./my-antidote.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	variant := config.DefaultVariant
	if len(args) == 1 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'antidote list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := fileLogger()
	defer logCloser.Close()

	deps, release := interactiveDeps(logger)
	runErr := tui.Run(game, deps, runtimeConfig())
	release()

	if runErr != nil {
		logger.Error("game crashed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
