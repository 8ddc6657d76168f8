package session

import "testing"

func TestBoostEngagesOnSecondConsecutiveGood(t *testing.T) {
	tests := []struct {
		name     string
		events   []Polarity
		expected bool
	}{
		{"no events", nil, false},
		{"one good", []Polarity{Good}, false},
		{"two good", []Polarity{Good, Good}, true},
		{"three good stays engaged", []Polarity{Good, Good, Good}, true},
		{"bad cancels", []Polarity{Good, Good, Bad}, false},
		{"bad breaks the streak", []Polarity{Good, Bad, Good}, false},
		{"re-engages after bad", []Polarity{Good, Good, Bad, Good, Good}, true},
		{"single good after bad", []Polarity{Good, Good, Bad, Good}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveBoost(tc.events); got != tc.expected {
				t.Errorf("DeriveBoost(%v) = %v, expected %v", tc.events, got, tc.expected)
			}
		})
	}
}

func TestBoostCancelRestoresSpeed(t *testing.T) {
	const base = 10.0
	const multiplier = 1.5

	c := newController(t, defaultConfig(), Hooks{})
	before := c.Speed(base, multiplier)

	c.OnCollect(Good)
	c.OnCollect(Good)
	if !c.State().SpeedBoosted {
		t.Fatal("two consecutive good pickups should engage the boost")
	}
	if got := c.Speed(base, multiplier); got != base*multiplier {
		t.Errorf("boosted Speed() = %v, expected %v", got, base*multiplier)
	}

	c.OnCollect(Bad)
	if c.State().SpeedBoosted {
		t.Fatal("a bad pickup should cancel the boost")
	}
	if got := c.Speed(base, multiplier); got != before {
		t.Errorf("Speed() after cancel = %v, expected exactly %v", got, before)
	}
}

func TestBoostMatchesReplay(t *testing.T) {
	// The controller's boost flag must always equal a replay of its own history
	events := []Polarity{Good, Bad, Good, Good, Good, Bad, Bad, Good, Good, Bad, Good}
	c := newController(t, Config{TotalItems: 50, WinThreshold: 10, TimeLimit: 90}, Hooks{})

	for i, p := range events {
		c.OnCollect(p)
		if replay := DeriveBoost(c.History()); replay != c.State().SpeedBoosted {
			t.Fatalf("after event %d: boosted = %v, replay = %v", i, c.State().SpeedBoosted, replay)
		}
	}
}
