package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pickup-arena/internal/games/pickup"
	"github.com/vovakirdan/pickup-arena/internal/platform/tui"
	"github.com/vovakirdan/pickup-arena/internal/registry"
	"github.com/vovakirdan/pickup-arena/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a session",
	Long: `Start a session of the given game (default: pickup).

Controls:
  W/A/S/D, Arrows  - Push the ball
  P/Esc            - Pause
  R                - Restart (after the session ends)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Two minutes, 12 to win, stronger boost
  normal - Ninety seconds, 15 to win, speeds up as you collect
  hard   - One minute, 17 to win, items spread further apart
  fixed  - Config rules with no boost and no speed-up

Examples:
  pickup play
  pickup play --difficulty easy
  pickup play --seed 42 --config ./my-pickup.yaml
  pickup play --audio --volume 0.3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addSessionFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := pickup.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pickup list' to see available games.")
		os.Exit(1)
	}

	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sink := openAudio()
	pickup.SetAudio(sink)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, runtimeConfig())

	// Close audio before potential exit
	if err := sink.Close(); err != nil {
		logger.Warn("closing audio", "error", err)
	}

	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if g, ok := game.(*pickup.Game); ok {
		printSummary(g)
	}
}

// printSummary reports how the last session ended once the alt screen is gone.
func printSummary(g *pickup.Game) {
	s := g.Session()
	switch s.Phase {
	case session.PhaseWon:
		fmt.Printf("You won with a count of %d (seed %d).\n", s.Score, g.Seed())
	case session.PhaseLost:
		fmt.Printf("You lost with a count of %d (seed %d).\n", s.Score, g.Seed())
	default:
		fmt.Printf("Quit at a count of %d with %s left (seed %d).\n", s.Score, pickup.FormatClock(s.TimeRemaining), g.Seed())
	}
}
