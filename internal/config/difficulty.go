package config

import (
	"math"

	"github.com/vovakirdan/pickup-arena/internal/core"
)

// DifficultyManager scales player movement as a session progresses.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the number of
// items collected or the seconds elapsed, depending on the progression type.
func (d *DifficultyManager) Level(collected int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "collected":
		progress = float64(collected) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Force returns the player force for the current level.
// It grows from base to base * (1 + force_multiplier).
func (d *DifficultyManager) Force(base float64, collected int, elapsed float64) float64 {
	return base * (1.0 + d.Level(collected, elapsed)*d.cfg.Scaling.ForceMultiplier)
}

// Drag returns the drag for the current level; a slipperier body is harder to steer.
func (d *DifficultyManager) Drag(base float64, collected int, elapsed float64) float64 {
	return math.Max(0, base*(1.0-d.Level(collected, elapsed)*d.cfg.Scaling.DragMultiplier))
}
