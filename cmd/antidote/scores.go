package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antidote-run/internal/platform/tui"
	"github.com/vovakirdan/antidote-run/internal/registry"
	"github.com/vovakirdan/antidote-run/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the best runs for a variant",
	Long: `Display the top 10 runs for the specified variant.

Examples:
  antidote scores antidote
  antidote scores survival --interactive
  antidote scores classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all variants in the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	variant := args[0]

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'antidote list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", variant)
		return
	}

	if flagInteractive {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(variant, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading runs: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best runs for %s:\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Println("  No runs recorded yet. Be the first!")
		fmt.Println()
		return
	}

	rows := tui.RunRows(runs)
	fmt.Printf("  %-5s %7s %6s %7s %8s  %s\n", "Rank", "Score", "Kills", "Result", "Time", "Date")
	fmt.Printf("  %-5s %7s %6s %7s %8s  %s\n", "----", "-----", "-----", "------", "----", "----")
	for _, r := range rows {
		fmt.Printf("  %-5s %7s %6s %7s %8s  %s\n", r[0], r[1], r[2], r[3], r[4], r[5])
	}

	if stats, err := store.VariantStats(variant); err == nil && stats.Runs > 0 {
		fmt.Printf("\n  %d runs, %d wins, average score %.1f\n", stats.Runs, stats.Wins, stats.AvgScore)
	}
	fmt.Println()
}
