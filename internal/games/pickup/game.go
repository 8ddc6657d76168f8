// Package pickup implements the arena collection game: steer a ball over a
// plane, pick up good items, avoid bad ones, and beat the clock.
package pickup

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pickup-arena/internal/arena"
	"github.com/vovakirdan/pickup-arena/internal/audio"
	"github.com/vovakirdan/pickup-arena/internal/config"
	"github.com/vovakirdan/pickup-arena/internal/core"
	"github.com/vovakirdan/pickup-arena/internal/logging"
	"github.com/vovakirdan/pickup-arena/internal/placement"
	"github.com/vovakirdan/pickup-arena/internal/registry"
	"github.com/vovakirdan/pickup-arena/internal/session"
)

// ID is the registry identifier of the game.
const ID = "pickup"

// keyImpulse is how many seconds of force one direction key press applies.
// Terminals report repeated presses while a key is held, not the hold itself.
const keyImpulse = 0.1

// flashTicks is how long the last pickup stays highlighted in the HUD.
const flashTicks = 30

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// sink receives sound cues; Nop unless audio was enabled.
var sink audio.Sink = audio.Nop{}

// logger receives game events; discarded unless logging was enabled.
var logger = logging.Discard()

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetAudio routes sound cues to s. A nil s silences the game.
func SetAudio(s audio.Sink) {
	if s == nil {
		s = audio.Nop{}
	}
	sink = s
}

// SetLogger routes game events to l. A nil l discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// Game implements the pickup arena.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.PickupConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	arena   *arena.Arena
	body    arena.Body
	ctrl    *session.Controller
	seed    int64
	tick    uint64
	elapsed float64
	paused  bool

	// Last pickup, for the HUD flash
	lastPolarity session.Polarity
	flash        int

	sink   audio.Sink
	logger *log.Logger
}

// New creates a new pickup game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pickup Arena"
}

// Reset loads the configuration and starts a new session seeded by runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.LoadPickup(configPath)
	if err != nil {
		return fmt.Errorf("pickup: %w", err)
	}
	config.ApplyPickupPreset(&cfg, difficultyPreset)
	return g.ResetWith(runtime, cfg)
}

// ResetWith starts a new session with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.PickupConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("pickup: %w", err)
	}

	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sink = sink
	g.logger = logger

	return g.newSession(runtime.Seed)
}

// Restart begins a fresh session under the same configuration, drawing the
// placement seed from the game's own source.
func (g *Game) Restart() error {
	return g.newSession(g.rng.Int63())
}

func (g *Game) newSession(seed int64) error {
	sampler := placement.NewSampler(seed, g.cfg.Arena.MaxAttempts)
	a, err := arena.Build(sampler, g.cfg.ArenaPlan())
	if err != nil {
		g.logger.Error("arena setup failed", "seed", seed, "error", err)
		return fmt.Errorf("pickup: %w", err)
	}

	ctrl, err := session.New(g.cfg.SessionConfig(), session.Hooks{
		OnCollect:    g.onCollect,
		OnSessionEnd: g.onSessionEnd,
	})
	if err != nil {
		return fmt.Errorf("pickup: %w", err)
	}

	g.arena = a
	g.ctrl = ctrl
	g.body = arena.NewBody(g.cfg.Start(), g.cfg.Player.Radius)
	g.seed = seed
	g.tick = 0
	g.elapsed = 0
	g.paused = false
	g.flash = 0

	g.sink.Start()
	g.logger.Info("arena built",
		"seed", seed,
		"good", g.cfg.Items.Good,
		"bad", g.cfg.Items.Bad,
		"quota", g.cfg.Session.TotalItems,
		"time_limit", g.cfg.Session.TimeLimit,
	)
	return nil
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl == nil || g.ctrl.Phase().Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.flash > 0 {
		g.flash--
	}
	dt := g.runtime.TickSeconds()
	collected := g.ctrl.State().ItemsCollected

	force := g.difficulty.Force(g.cfg.Player.Force, collected, g.elapsed)
	force = g.ctrl.Speed(force, g.cfg.BoostMultiplier())
	g.body.Push(in.Direction(), force, keyImpulse)

	lo, hi := g.cfg.Bounds()
	g.body.Integrate(dt, g.difficulty.Drag(g.cfg.Player.Drag, collected, g.elapsed), lo, hi)
	g.elapsed += dt

	// Items the session drops after it ends stay on the board
	hits := g.arena.Touching(g.body.Pos, g.body.Radius+g.cfg.Items.Radius)
	accepted := g.ctrl.Frame(dt, g.arena.Polarities(hits)...)
	g.arena.MarkCollected(hits[:accepted]...)

	return core.StepResult{State: g.State()}
}

func (g *Game) onCollect(p session.Polarity, s session.State) {
	g.lastPolarity = p
	g.flash = flashTicks
	g.sink.Collect(p)
	g.logger.Debug("item collected",
		"polarity", p,
		"score", s.Score,
		"collected", s.ItemsCollected,
		"boosted", s.SpeedBoosted,
	)
}

func (g *Game) onSessionEnd(phase session.Phase, score int) {
	g.body.Visible = false
	g.body.Stop()
	g.sink.End(phase)
	g.logger.Info("session ended",
		"phase", phase,
		"score", score,
		"seed", g.seed,
		"time_left", FormatClock(g.ctrl.State().TimeRemaining),
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	phase := g.ctrl.Phase()
	return core.GameState{
		Score:    g.ctrl.State().Score,
		GameOver: phase.Terminal(),
		Won:      phase == session.PhaseWon,
		Paused:   g.paused,
	}
}

// Session returns the controller counters.
func (g *Game) Session() session.State {
	if g.ctrl == nil {
		return session.State{}
	}
	return g.ctrl.State()
}

// Arena returns the current layout.
func (g *Game) Arena() *arena.Arena {
	return g.arena
}

// Seed returns the placement seed of the current session.
func (g *Game) Seed() int64 {
	return g.seed
}
