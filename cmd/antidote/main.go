// antidote is a terminal side-scroller: jump over the monsters you cannot
// kill, shoot the ones you can, and grab the antidote before they get you.
//
// Usage:
//
//	antidote list               - List available variants
//	antidote play [variant]     - Play a variant (default: antidote)
//	antidote menu               - Pick variants interactively
//	antidote serve              - Start SSH server for remote play
//	antidote scores <variant>   - Show the best runs for a variant
//	antidote sim                - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.antidote/scores.db)
//	--log-level <level>   - debug, info, warn or error
//	--config <path>       - Custom tuning YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antidote-run/internal/game"
	"github.com/vovakirdan/antidote-run/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "antidote",
	Short: "Antidote Run - a terminal side-scrolling shooter",
	Long: `Antidote Run drops you on a monster-infested road. Shoot the monsters
that can be killed, jump over the ones that cannot, and collect the
antidote once your score is high enough.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  sim      - Run the game headless

Examples:
  antidote play
  antidote play bounty --difficulty hard
  antidote menu
  antidote serve --ssh :2222
  antidote scores antidote`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		game.SetConfigPath(flagConfig)
		game.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
