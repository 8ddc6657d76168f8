// pickup is a terminal arena game: steer a ball around a walled field and
// collect the good items before the clock runs out.
//
// Usage:
//
//	pickup play              - Play a session
//	pickup menu              - Pick a difficulty, play, review results, repeat
//	pickup layout            - Print the item layout for a seed without playing
//	pickup config            - Print the default configuration
//	pickup list              - List available games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible layouts
//	--log <path>         - Write logs to a file (default: off)
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pickup-arena/internal/games/pickup"
	"github.com/vovakirdan/pickup-arena/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogPath  string
	flagLogLevel string

	logger   = logging.Discard()
	closeLog = func() error { return nil }
)

func main() {
	err := rootCmd.Execute()
	//nolint:errcheck // Best-effort flush on exit
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pickup",
	Short: "Pickup Arena - collect the good items, dodge the bad ones",
	Long: `Pickup Arena is a terminal game played against the clock.

Twenty good and twenty bad items are scattered around a walled arena.
The session ends after twenty pickups: finish with a count of at least
fifteen to win. Two good pickups in a row boost your speed until the
next bad one. Run out of time and you lose.

Available commands:
  play     - Play a session directly
  menu     - Difficulty picker with a results table between sessions
  layout   - Print the item layout a seed produces
  config   - Print the default configuration
  list     - Show all available games

Examples:
  pickup play
  pickup play --difficulty hard --audio
  pickup menu --log ~/.pickup-arena/pickup.log
  pickup layout --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	l, closer, err := logging.New(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	logger = l
	closeLog = closer
	pickup.SetLogger(l)
	logger.Debug("logging enabled", "level", l.GetLevel(), "path", flagLogPath)
	return nil
}
