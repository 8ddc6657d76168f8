package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pickup-arena/internal/config"
	"github.com/vovakirdan/pickup-arena/internal/games/pickup"
	"github.com/vovakirdan/pickup-arena/internal/platform/tui"
	"github.com/vovakirdan/pickup-arena/internal/registry"
	"github.com/vovakirdan/pickup-arena/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play, and review results in a loop",
	Long: `Start in interactive menu mode.

Pick a difficulty with the arrow keys or j/k and Enter. After each
session a results table lists every session played since the menu
opened. Press Enter to play again or Q to quit.

Examples:
  pickup menu
  pickup menu --fps 30
  pickup menu --audio`,
	Run: runMenu,
}

func init() {
	addSessionFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sink := openAudio()
	pickup.SetAudio(sink)
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("closing audio", "error", err)
		}
	}()

	cfg := runtimeConfig()
	current, _ := config.ParsePreset(flagDifficulty)
	var results []tui.Result

	// Menu loop
	for round := 1; ; round++ {
		preset, ok, err := tui.RunDifficultyMenu(cfg.ScreenW, cfg.ScreenH, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		// Check if user quit
		if !ok {
			return
		}
		current = preset
		pickup.SetDifficultyPreset(string(preset))

		game, err := registry.Create(pickup.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}

		// Fresh layout each round unless the seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg); err != nil {
			logger.Error("session failed", "round", round, "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}

		if g, ok := game.(*pickup.Game); ok {
			results = append(results, resultOf(round, preset, g))
		}

		again, err := tui.RunResults(results, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if !again {
			return
		}
	}
}

func resultOf(round int, preset config.DifficultyPreset, g *pickup.Game) tui.Result {
	s := g.Session()
	phase := s.Phase.String()
	if s.Phase == session.PhasePlaying {
		phase = "quit"
	}
	return tui.Result{
		Round:      round,
		Difficulty: string(preset),
		Phase:      phase,
		Score:      s.Score,
		Collected:  s.ItemsCollected,
		TimeLeft:   pickup.FormatClock(s.TimeRemaining),
		Seed:       g.Seed(),
	}
}
