package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const pickupFile = "pickup.yaml"

// LoadPickup loads the pickup configuration and validates it.
// Search order: customPath -> ~/.pickup-arena/configs/pickup.yaml -> ./configs/pickup.yaml -> embedded default
// Files are decoded over the hardcoded defaults, so a partial file only
// overrides the keys it names.
func LoadPickup(customPath string) (PickupConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PickupConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParsePickup(data)
		if err != nil {
			return PickupConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(pickupFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParsePickup(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", pickupFile)); err == nil {
		if cfg, err := ParsePickup(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParsePickup(defaultPickupYAML)
	if err != nil {
		return DefaultPickupConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParsePickup decodes YAML over the defaults and validates the result.
func ParsePickup(data []byte) (PickupConfig, error) {
	cfg := DefaultPickupConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PickupConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PickupConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pickup-arena", "configs", filename)
}

// ApplyPickupPreset modifies the config based on a difficulty preset.
func ApplyPickupPreset(cfg *PickupConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Boost.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust the session rules based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Session.TimeLimit = 120
		cfg.Session.WinThreshold = min(cfg.Session.WinThreshold, 12)
		cfg.Boost.Multiplier = 1.75
	case DifficultyHard:
		cfg.Session.TimeLimit = 60
		cfg.Session.WinThreshold = max(cfg.Session.WinThreshold, min(17, cfg.Session.TotalItems, cfg.Items.Good))
		cfg.Arena.MinSeparation = max(cfg.Arena.MinSeparation, 1.5)
	}
}
