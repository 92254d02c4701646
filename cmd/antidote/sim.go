package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antidote-run/internal/config"
	"github.com/vovakirdan/antidote-run/internal/core"
	"github.com/vovakirdan/antidote-run/internal/game"
	"github.com/vovakirdan/antidote-run/internal/platform/tui"
	"github.com/vovakirdan/antidote-run/internal/storage"
)

var (
	flagSimVariant   string
	flagSimSeconds   float64
	flagSimAutopilot bool
	flagSimRecord    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal at the configured tick rate and log the
outcome. With --autopilot the player shoots continuously and jumps over
monsters it cannot kill; otherwise it stands still.

The same seed and flags always produce the same run.

Examples:
  antidote sim --seed 42 --autopilot
  antidote sim --variant survival --seconds 120 --autopilot --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimVariant, "variant", config.DefaultVariant, "Variant to simulate")
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated seconds before giving up")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Let the autopilot play")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save a finished run to the run history")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := stderrLogger()

	if _, err := config.LookupVariant(flagSimVariant); err != nil {
		logger.Fatal("unknown variant", "variant", flagSimVariant)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := flagFPS
	if fps <= 0 {
		fps = core.DefaultConfig().TickRate
	}

	g := game.New(flagSimVariant)
	g.Reset(core.RuntimeConfig{TickRate: fps, Seed: seed})
	if err := g.ConfigError(); err != nil {
		logger.Warn("using default config", "error", err)
	}

	var pilot *game.Autopilot
	if flagSimAutopilot {
		pilot = &game.Autopilot{}
	}

	logger.Debug("simulating", "variant", g.ID(), "seed", seed, "seconds", flagSimSeconds, "fps", fps)
	state := game.Simulate(g, flagSimSeconds, 1/float64(fps), pilot)
	hud := g.HUD()
	snap := g.Snapshot()

	logger.Info("simulation finished",
		"variant", g.ID(),
		"seed", seed,
		"phase", state.Phase,
		"score", state.Score,
		"kills", hud.Kills,
		"hits", hud.Hits,
		"elapsed", time.Duration(state.Elapsed*float64(time.Second)).Round(time.Millisecond),
		"hash", snap.Hash(),
	)

	if !flagSimRecord || !state.GameOver {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open run history", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(tui.RunRecord(g.ID(), state, hud))
	if err != nil {
		logger.Error("cannot save run", "error", err)
		return
	}
	logger.Info("run recorded", "id", id)
}
