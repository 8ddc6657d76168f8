package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pickup-arena/internal/config"
)

var (
	flagShowConfig     string
	flagShowDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration a session would use",
	Long: `Print the effective pickup configuration as YAML.

With no flags this is the built-in default, a good starting point for a
custom file. Save it to ~/.pickup-arena/configs/pickup.yaml or
./configs/pickup.yaml, or pass it with --config.

Examples:
  pickup config > my-pickup.yaml
  pickup config --difficulty hard
  pickup config --config ./my-pickup.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom pickup config YAML")
	configCmd.Flags().StringVar(&flagShowDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagShowDifficulty)
	if err != nil {
		return err
	}
	if flagShowConfig == "" && preset == "" {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := config.LoadPickup(flagShowConfig)
	if err != nil {
		return err
	}
	config.ApplyPickupPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
