// Package arena lays out the collectible items of one session and moves the
// player body across the ground plane.
package arena

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pickup-arena/internal/core"
	"github.com/vovakirdan/pickup-arena/internal/placement"
	"github.com/vovakirdan/pickup-arena/internal/session"
)

// Item names, suffixed with the per-category index.
const (
	GoodItemName = "Pickup"
	BadItemName  = "DontPickup"
)

// ErrSetup reports an arena that could not be laid out.
var ErrSetup = errors.New("arena: setup failed")

// Plan describes what to place and where.
type Plan struct {
	Request placement.Request
	Good    int
	Bad     int
	Start   core.Point2D
}

// Item is a collectible. Items are never removed from an arena; collecting one
// only flips Collected so iteration order stays stable.
type Item struct {
	ID        int
	Name      string
	Position  core.Point2D
	Polarity  session.Polarity
	Collected bool
}

// Arena holds the bounds, the player start and every item placed for a session.
type Arena struct {
	Min   core.Point2D
	Max   core.Point2D
	Start core.Point2D
	Items []Item
}

// Build places plan.Good good items and plan.Bad bad items, alternating between
// the categories while one kind remains, into a single shared set so no two items
// of either kind end up closer than the minimum separation.
func Build(s *placement.Sampler, plan Plan) (*Arena, error) {
	if plan.Good < 0 || plan.Bad < 0 {
		return nil, fmt.Errorf("%w: negative item count (good %d, bad %d)", ErrSetup, plan.Good, plan.Bad)
	}

	placed := &placement.PlacedSet{}
	a := &Arena{
		Min:   plan.Request.AreaMin,
		Max:   plan.Request.AreaMax,
		Start: plan.Start,
		Items: make([]Item, 0, plan.Good+plan.Bad),
	}

	var good, bad int
	for good < plan.Good || bad < plan.Bad {
		if good < plan.Good {
			if err := a.place(s, plan.Request, placed, session.Good, good); err != nil {
				return nil, err
			}
			good++
		}
		if bad < plan.Bad {
			if err := a.place(s, plan.Request, placed, session.Bad, bad); err != nil {
				return nil, err
			}
			bad++
		}
	}

	return a, nil
}

func (a *Arena) place(s *placement.Sampler, req placement.Request, placed *placement.PlacedSet, pol session.Polarity, index int) error {
	p, err := s.Sample(req, placed)
	if err != nil {
		return fmt.Errorf("%w: placing %s %d: %w", ErrSetup, pol, index, err)
	}
	placed.Add(p)

	name := GoodItemName
	if pol == session.Bad {
		name = BadItemName
	}
	a.Items = append(a.Items, Item{
		ID:       len(a.Items),
		Name:     fmt.Sprintf("%s%d", name, index),
		Position: p,
		Polarity: pol,
	})
	return nil
}

// Remaining returns the number of uncollected items of the given polarity.
func (a *Arena) Remaining(p session.Polarity) int {
	n := 0
	for _, it := range a.Items {
		if !it.Collected && it.Polarity == p {
			n++
		}
	}
	return n
}

// Touching returns the indices, in item order, of every uncollected item within
// reach of pos. reach is the sum of the body and item radii. Nothing is marked;
// the caller collects only the hits the session accepts.
func (a *Arena) Touching(pos core.Point2D, reach float64) []int {
	var out []int
	reachSq := reach * reach
	for i, it := range a.Items {
		if !it.Collected && pos.DistSq(it.Position) <= reachSq {
			out = append(out, i)
		}
	}
	return out
}

// Polarities returns the polarity of each indexed item.
func (a *Arena) Polarities(ids []int) []session.Polarity {
	out := make([]session.Polarity, len(ids))
	for i, id := range ids {
		out[i] = a.Items[id].Polarity
	}
	return out
}

// MarkCollected flips Collected on the indexed items.
func (a *Arena) MarkCollected(ids ...int) {
	for _, id := range ids {
		a.Items[id].Collected = true
	}
}
