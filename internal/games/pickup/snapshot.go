package pickup

import (
	"math"

	"github.com/vovakirdan/pickup-arena/internal/session"
)

// Snapshot is the observable state of a session, for determinism checks.
type Snapshot struct {
	Tick     uint64
	Seed     int64
	Phase    session.Phase
	Score    int
	Items    int
	TimeLeft float64
	Boosted  bool

	PlayerX, PlayerZ float64
	PlayerVisible    bool

	// Each item is 4 values: X, Z, polarity (0 good, 1 bad), collected (0/1)
	ItemData []float64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := g.ctrl.State()
	data := make([]float64, 0, len(g.arena.Items)*4)
	for _, it := range g.arena.Items {
		collected := 0.0
		if it.Collected {
			collected = 1
		}
		data = append(data, it.Position.X, it.Position.Z, float64(it.Polarity), collected)
	}

	return Snapshot{
		Tick:          g.tick,
		Seed:          g.seed,
		Phase:         s.Phase,
		Score:         s.Score,
		Items:         s.ItemsCollected,
		TimeLeft:      s.TimeRemaining,
		Boosted:       s.SpeedBoosted,
		PlayerX:       g.body.Pos.X,
		PlayerZ:       g.body.Pos.Z,
		PlayerVisible: g.body.Visible,
		ItemData:      data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Seed)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Items) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.TimeLeft)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerZ)
	if snap.Boosted {
		h = h*31 + 1
	}
	if snap.PlayerVisible {
		h = h*31 + 1
	}

	for _, v := range snap.ItemData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
