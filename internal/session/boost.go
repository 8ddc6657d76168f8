package session

// boostStreak is the number of consecutive good pickups that engages the boost.
const boostStreak = 2

// Boost tracks the speed boost as a fold over collection events.
// It holds no state that cannot be rebuilt by replaying the same events.
type Boost struct {
	streak  int
	engaged bool
}

// Apply folds one event into the boost and returns whether it is engaged.
// A bad pickup resets the streak and cancels the boost immediately.
func (b *Boost) Apply(p Polarity) bool {
	if p == Bad {
		b.streak = 0
		b.engaged = false
		return false
	}
	b.streak++
	if b.streak >= boostStreak {
		b.engaged = true
	}
	return b.engaged
}

// Engaged reports the current boost state.
func (b *Boost) Engaged() bool {
	return b.engaged
}

// DeriveBoost replays events from the start of a session.
func DeriveBoost(events []Polarity) bool {
	var b Boost
	for _, p := range events {
		b.Apply(p)
	}
	return b.Engaged()
}
