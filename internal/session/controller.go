// Package session implements the play-session state machine: collection events
// and elapsed time drive it from Playing to exactly one terminal phase.
package session

import (
	"errors"
	"fmt"
)

// Phase is the lifecycle position of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further state change can happen.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Polarity says whether a collected item helps or hurts the score.
type Polarity int

const (
	Good Polarity = iota
	Bad
)

// String returns a human-readable name for the polarity.
func (p Polarity) String() string {
	if p == Good {
		return "good"
	}
	return "bad"
}

// Delta is the score change for collecting an item of this polarity.
func (p Polarity) Delta() int {
	if p == Good {
		return 1
	}
	return -1
}

// ErrInvalidConfig reports a configuration the controller refuses to start with.
var ErrInvalidConfig = errors.New("session: invalid config")

// Config fixes the rules of one session.
type Config struct {
	TotalItems   int     // Pickups needed to end the session
	WinThreshold int     // Minimum score at the end for a win
	TimeLimit    float64 // Countdown in seconds
}

// Validate rejects configurations that cannot produce a meaningful session.
func (c Config) Validate() error {
	if c.TotalItems <= 0 {
		return fmt.Errorf("%w: total items must be positive, got %d", ErrInvalidConfig, c.TotalItems)
	}
	if c.WinThreshold > c.TotalItems {
		return fmt.Errorf("%w: win threshold %d unreachable with %d items", ErrInvalidConfig, c.WinThreshold, c.TotalItems)
	}
	if !(c.TimeLimit > 0) {
		return fmt.Errorf("%w: time limit must be positive, got %v", ErrInvalidConfig, c.TimeLimit)
	}
	return nil
}

// State is a snapshot of the session counters.
type State struct {
	Score          int
	ItemsCollected int
	TotalItems     int
	TimeRemaining  float64
	Phase          Phase
	SpeedBoosted   bool
}

// Hooks are side-effect sinks. Either may be nil.
type Hooks struct {
	// OnCollect runs after every accepted collection with the updated state.
	OnCollect func(p Polarity, s State)
	// OnSessionEnd runs exactly once, when the session leaves Playing.
	OnSessionEnd func(phase Phase, score int)
}

// Controller owns the state of a single play session.
// All methods must be called from the host's update loop; it is not safe for
// concurrent use.
type Controller struct {
	cfg     Config
	hooks   Hooks
	state   State
	boost   Boost
	history []Polarity
}

// New validates cfg and returns a controller in the Playing phase.
func New(cfg Config, hooks Hooks) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:   cfg,
		hooks: hooks,
		state: State{
			TotalItems:    cfg.TotalItems,
			TimeRemaining: cfg.TimeLimit,
			Phase:         PhasePlaying,
		},
	}, nil
}

// Config returns the rules the controller was created with.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a copy of the current counters.
func (c *Controller) State() State {
	return c.state
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.state.Phase
}

// History returns the accepted collection events in order.
func (c *Controller) History() []Polarity {
	out := make([]Polarity, len(c.history))
	copy(out, c.history)
	return out
}

// OnCollect records a pickup. It is a no-op once the session is over, so a
// pickup delivered after OnTick has expired the timer is dropped. Hosts that
// report a tick's pickups and its dt together should use Frame.
func (c *Controller) OnCollect(p Polarity) {
	if c.state.Phase != PhasePlaying {
		return
	}

	c.state.ItemsCollected++
	c.state.Score += p.Delta()
	c.history = append(c.history, p)
	c.state.SpeedBoosted = c.boost.Apply(p)

	if c.hooks.OnCollect != nil {
		c.hooks.OnCollect(p, c.state)
	}

	if c.state.ItemsCollected == c.cfg.TotalItems {
		if c.state.Score >= c.cfg.WinThreshold {
			c.end(PhaseWon)
		} else {
			c.end(PhaseLost)
		}
	}
}

// OnTick advances the countdown by dt seconds. Reaching zero loses the session
// regardless of how many items were collected, including pickups of the same
// tick that have not been applied yet; Frame applies those first.
func (c *Controller) OnTick(dt float64) {
	if c.state.Phase != PhasePlaying {
		return
	}
	if !(dt > 0) {
		return
	}

	c.state.TimeRemaining = max(0, c.state.TimeRemaining-dt)
	if c.state.TimeRemaining == 0 {
		c.end(PhaseLost)
	}
}

// Frame applies everything one host frame produced: the pickups first, then dt.
// Collisions detected in a frame happened within that frame's elapsed time, so a
// final pickup and timer expiry landing together resolve by the pickup, whatever
// order the host found them in. It returns how many of the pickups were
// accepted: those after the one that ends the session are dropped.
func (c *Controller) Frame(dt float64, collected ...Polarity) int {
	accepted := 0
	for _, p := range collected {
		if c.state.Phase != PhasePlaying {
			break
		}
		c.OnCollect(p)
		accepted++
	}
	c.OnTick(dt)
	return accepted
}

// Speed returns base scaled by multiplier while boosted, base otherwise.
func (c *Controller) Speed(base, multiplier float64) float64 {
	if c.state.SpeedBoosted {
		return base * multiplier
	}
	return base
}

func (c *Controller) end(phase Phase) {
	c.state.Phase = phase
	if c.hooks.OnSessionEnd != nil {
		c.hooks.OnSessionEnd(phase, c.state.Score)
	}
}
