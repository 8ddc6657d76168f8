package config

import (
	_ "embed"
)

//go:embed defaults/pickup.yaml
var defaultPickupYAML []byte

// DefaultPickupConfig returns the default pickup configuration.
func DefaultPickupConfig() PickupConfig {
	return PickupConfig{
		Arena: PickupArena{
			Width:           36,
			Depth:           36,
			MinSeparation:   1.0,
			ExclusionRadius: 2.0,
			MaxAttempts:     10000,
		},
		Items: PickupItems{
			Good:   20,
			Bad:    20,
			Radius: 0.5,
		},
		Session: PickupSession{
			TotalItems:   20,
			WinThreshold: 15,
			TimeLimit:    90,
		},
		Player: PickupPlayer{
			Radius: 0.5,
			Force:  30,
			Drag:   2.0,
		},
		Boost: PickupBoost{
			Enabled:    true,
			Multiplier: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "collected",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				ForceMultiplier: 0.5,
				DragMultiplier:  0.3,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPickupYAML
}
