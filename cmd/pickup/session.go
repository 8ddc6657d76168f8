package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pickup-arena/internal/audio"
	"github.com/vovakirdan/pickup-arena/internal/config"
	"github.com/vovakirdan/pickup-arena/internal/core"
	"github.com/vovakirdan/pickup-arena/internal/games/pickup"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAudio      bool
	flagVolume     float64
)

// addSessionFlags registers the flags shared by every command that runs a session.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom pickup config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagAudio, "audio", false, "Play music and sound cues")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Audio volume (0-1)")
}

// runtimeConfig sizes the runtime to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame hands the session flags to the pickup game before it is created.
func configureGame() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	pickup.SetConfigPath(flagConfig)
	pickup.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openAudio returns the speaker when audio was requested and the device opens.
// The game stays playable without sound.
func openAudio() audio.Sink {
	if !flagAudio {
		return audio.Nop{}
	}
	s, err := audio.NewSpeaker(flagVolume)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, continuing without sound\n", err)
		logger.Warn("audio unavailable", "error", err)
		return audio.Nop{}
	}
	return s
}
