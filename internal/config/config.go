// Package config provides YAML-based game configuration loading and
// difficulty management for the pickup arena.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pickup-arena/internal/arena"
	"github.com/vovakirdan/pickup-arena/internal/core"
	"github.com/vovakirdan/pickup-arena/internal/placement"
	"github.com/vovakirdan/pickup-arena/internal/session"
)

// ErrInvalid reports a configuration that cannot produce a playable session.
var ErrInvalid = errors.New("config: invalid")

// PickupConfig contains all configuration for the pickup game.
type PickupConfig struct {
	Arena      PickupArena      `yaml:"arena"`
	Items      PickupItems      `yaml:"items"`
	Session    PickupSession    `yaml:"session"`
	Player     PickupPlayer     `yaml:"player"`
	Boost      PickupBoost      `yaml:"boost"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PickupArena defines the placement area, centered on the origin.
type PickupArena struct {
	Width           float64 `yaml:"width"`
	Depth           float64 `yaml:"depth"`
	MinSeparation   float64 `yaml:"min_separation"`
	ExclusionRadius float64 `yaml:"exclusion_radius"` // Keep-out radius around the player start
	MaxAttempts     int     `yaml:"max_attempts"`     // 0 = placement default
}

// PickupItems defines how many items of each kind are placed.
type PickupItems struct {
	Good   int     `yaml:"good"`
	Bad    int     `yaml:"bad"`
	Radius float64 `yaml:"radius"`
}

// PickupSession defines the end conditions.
type PickupSession struct {
	TotalItems   int     `yaml:"total_items"`   // Pickups that end the session
	WinThreshold int     `yaml:"win_threshold"` // Minimum score for a win
	TimeLimit    float64 `yaml:"time_limit"`    // Seconds
}

// PickupPlayer defines the player body.
type PickupPlayer struct {
	StartX float64 `yaml:"start_x"`
	StartZ float64 `yaml:"start_z"`
	Radius float64 `yaml:"radius"`
	Force  float64 `yaml:"force"` // Acceleration per second of held input
	Drag   float64 `yaml:"drag"`  // Linear velocity damping per second
}

// PickupBoost defines the consecutive-pickup speed boost.
type PickupBoost struct {
	Enabled    bool    `yaml:"enabled"`
	Multiplier float64 `yaml:"multiplier"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a session.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "collected", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Items or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ForceMultiplier float64 `yaml:"force_multiplier"` // Added to player force at max difficulty
	DragMultiplier  float64 `yaml:"drag_multiplier"`  // Removed from drag at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value into a preset. An empty string means none.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports the first setting that cannot produce a playable session.
func (c PickupConfig) Validate() error {
	switch {
	case !(c.Arena.Width > 0) || !(c.Arena.Depth > 0):
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalid, c.Arena.Width, c.Arena.Depth)
	case !(c.Arena.MinSeparation >= 0):
		return fmt.Errorf("%w: arena.min_separation must be non-negative", ErrInvalid)
	case !(c.Arena.ExclusionRadius >= 0):
		return fmt.Errorf("%w: arena.exclusion_radius must be non-negative", ErrInvalid)
	case c.Items.Good < 0 || c.Items.Bad < 0:
		return fmt.Errorf("%w: item counts must not be negative", ErrInvalid)
	case !(c.Items.Radius > 0) || !(c.Player.Radius > 0):
		return fmt.Errorf("%w: item and player radius must be positive", ErrInvalid)
	case c.Session.TotalItems > c.Items.Good+c.Items.Bad:
		return fmt.Errorf("%w: session.total_items %d exceeds the %d items placed",
			ErrInvalid, c.Session.TotalItems, c.Items.Good+c.Items.Bad)
	case c.Session.WinThreshold > c.Items.Good:
		return fmt.Errorf("%w: session.win_threshold %d unreachable with %d good items",
			ErrInvalid, c.Session.WinThreshold, c.Items.Good)
	case !(c.Player.Force >= 0) || !(c.Player.Drag >= 0):
		return fmt.Errorf("%w: player force and drag must not be negative", ErrInvalid)
	case c.Boost.Enabled && !(c.Boost.Multiplier > 0):
		return fmt.Errorf("%w: boost.multiplier must be positive", ErrInvalid)
	}

	if err := c.SessionConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Start returns the player start position.
func (c PickupConfig) Start() core.Point2D {
	return core.Pt(c.Player.StartX, c.Player.StartZ)
}

// Bounds returns the arena corners.
func (c PickupConfig) Bounds() (core.Point2D, core.Point2D) {
	hw, hd := c.Arena.Width/2, c.Arena.Depth/2
	return core.Pt(-hw, -hd), core.Pt(hw, hd)
}

// SessionConfig returns the controller rules.
func (c PickupConfig) SessionConfig() session.Config {
	return session.Config{
		TotalItems:   c.Session.TotalItems,
		WinThreshold: c.Session.WinThreshold,
		TimeLimit:    c.Session.TimeLimit,
	}
}

// PlacementRequest returns the sampler request, excluding the area around the
// player start.
func (c PickupConfig) PlacementRequest() placement.Request {
	lo, hi := c.Bounds()
	start := c.Start()
	return placement.Request{
		AreaMin:         lo,
		AreaMax:         hi,
		MinSeparation:   c.Arena.MinSeparation,
		Exclusion:       &start,
		ExclusionRadius: c.Arena.ExclusionRadius,
	}
}

// ArenaPlan returns everything arena.Build needs.
func (c PickupConfig) ArenaPlan() arena.Plan {
	return arena.Plan{
		Request: c.PlacementRequest(),
		Good:    c.Items.Good,
		Bad:     c.Items.Bad,
		Start:   c.Start(),
	}
}

// BoostMultiplier returns the speed multiplier while boosted, 1 when disabled.
func (c PickupConfig) BoostMultiplier() float64 {
	if !c.Boost.Enabled {
		return 1
	}
	return c.Boost.Multiplier
}
