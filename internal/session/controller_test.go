package session

import (
	"errors"
	"testing"
)

func newController(t *testing.T, cfg Config, hooks Hooks) *Controller {
	t.Helper()
	c, err := New(cfg, hooks)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

func defaultConfig() Config {
	return Config{TotalItems: 20, WinThreshold: 15, TimeLimit: 90}
}

func collect(c *Controller, good, bad int) {
	for i := 0; i < good; i++ {
		c.OnCollect(Good)
	}
	for i := 0; i < bad; i++ {
		c.OnCollect(Bad)
	}
}

func TestWinLoseCorrectness(t *testing.T) {
	tests := []struct {
		name          string
		good, bad     int
		expectedPhase Phase
		expectedScore int
	}{
		{"18 good 2 bad wins", 18, 2, PhaseWon, 16},
		{"10 good 10 bad loses", 10, 10, PhaseLost, 0},
		{"just below threshold loses", 17, 3, PhaseLost, 14},
		{"all good wins", 20, 0, PhaseWon, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ends int
			var endPhase Phase
			var endScore int
			c := newController(t, defaultConfig(), Hooks{
				OnSessionEnd: func(p Phase, score int) {
					ends++
					endPhase = p
					endScore = score
				},
			})

			collect(c, tc.good, tc.bad)

			s := c.State()
			if s.Phase != tc.expectedPhase {
				t.Errorf("Phase = %v, expected %v", s.Phase, tc.expectedPhase)
			}
			if s.Score != tc.expectedScore {
				t.Errorf("Score = %d, expected %d", s.Score, tc.expectedScore)
			}
			if ends != 1 {
				t.Fatalf("OnSessionEnd fired %d times, expected 1", ends)
			}
			if endPhase != tc.expectedPhase || endScore != tc.expectedScore {
				t.Errorf("OnSessionEnd(%v, %d), expected (%v, %d)", endPhase, endScore, tc.expectedPhase, tc.expectedScore)
			}
		})
	}
}

func TestThresholdBoundary(t *testing.T) {
	// 15 good + 0 bad out of 15 items lands exactly on the threshold
	c := newController(t, Config{TotalItems: 15, WinThreshold: 15, TimeLimit: 90}, Hooks{})
	collect(c, 15, 0)
	if c.Phase() != PhaseWon {
		t.Errorf("Phase = %v, expected won at score == threshold", c.Phase())
	}
}

func TestTimerExpiry(t *testing.T) {
	var ends int
	c := newController(t, defaultConfig(), Hooks{
		OnSessionEnd: func(Phase, int) { ends++ },
	})

	for i := 1; i <= 90; i++ {
		c.OnTick(1.0)
		if i < 90 && c.Phase() != PhasePlaying {
			t.Fatalf("session ended early after %d ticks", i)
		}
	}

	s := c.State()
	if s.Phase != PhaseLost {
		t.Errorf("Phase = %v, expected lost", s.Phase)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, expected 0", s.Score)
	}
	if s.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %v, expected 0", s.TimeRemaining)
	}
	if ends != 1 {
		t.Errorf("OnSessionEnd fired %d times, expected 1", ends)
	}
}

func TestTimerClampsAtZero(t *testing.T) {
	c := newController(t, Config{TotalItems: 5, WinThreshold: 3, TimeLimit: 1.5}, Hooks{})
	c.OnTick(10)
	if s := c.State(); s.TimeRemaining != 0 || s.Phase != PhaseLost {
		t.Errorf("State = %+v, expected time 0 and lost", s)
	}
}

func TestTimerExpiryIgnoresProgress(t *testing.T) {
	c := newController(t, defaultConfig(), Hooks{})
	collect(c, 19, 0)
	c.OnTick(90)
	if c.Phase() != PhaseLost {
		t.Errorf("Phase = %v, expected lost on expiry even with 19 good pickups", c.Phase())
	}
}

func TestNonPositiveTickIgnored(t *testing.T) {
	c := newController(t, defaultConfig(), Hooks{})
	c.OnTick(0)
	c.OnTick(-5)
	if s := c.State(); s.TimeRemaining != 90 {
		t.Errorf("TimeRemaining = %v, expected 90", s.TimeRemaining)
	}
}

func TestTerminalIdempotence(t *testing.T) {
	setups := []struct {
		name string
		run  func(c *Controller)
	}{
		{"after win", func(c *Controller) { collect(c, 20, 0) }},
		{"after loss by pickups", func(c *Controller) { collect(c, 10, 10) }},
		{"after loss by timer", func(c *Controller) { c.OnTick(100) }},
	}

	for _, tc := range setups {
		t.Run(tc.name, func(t *testing.T) {
			var ends int
			c := newController(t, defaultConfig(), Hooks{
				OnSessionEnd: func(Phase, int) { ends++ },
			})
			tc.run(c)
			before := c.State()
			historyLen := len(c.History())

			c.OnCollect(Good)
			c.OnCollect(Bad)
			c.OnTick(1)
			c.OnTick(1000)
			c.Frame(1, Good, Good)

			after := c.State()
			if after != before {
				t.Errorf("state changed after terminal phase: %+v -> %+v", before, after)
			}
			if len(c.History()) != historyLen {
				t.Error("history grew after terminal phase")
			}
			if ends != 1 {
				t.Errorf("OnSessionEnd fired %d times, expected 1", ends)
			}
		})
	}
}

func TestTimeFrozenAfterWin(t *testing.T) {
	c := newController(t, defaultConfig(), Hooks{})
	c.OnTick(30.5)
	collect(c, 20, 0)
	c.OnTick(10)
	if s := c.State(); s.TimeRemaining != 59.5 {
		t.Errorf("TimeRemaining = %v, expected frozen at 59.5", s.TimeRemaining)
	}
}

func TestOrderIndependence(t *testing.T) {
	// The final pickup and timer expiry land in the same tick.
	tests := []struct {
		name          string
		good, bad     int
		final         Polarity
		expectedPhase Phase
		expectedScore int
	}{
		{"losing final pickup", 10, 9, Bad, PhaseLost, 0},
		{"winning final pickup", 19, 0, Good, PhaseWon, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prepare := func(t *testing.T) *Controller {
				c := newController(t, defaultConfig(), Hooks{})
				collect(c, tc.good, tc.bad)
				c.OnTick(89.5)
				return c
			}

			// Whatever order the host found the events in, a tick hands them
			// to Frame together.
			viaFrame := prepare(t)
			viaFrame.Frame(1, tc.final)
			if s := viaFrame.State(); s.Phase != tc.expectedPhase || s.Score != tc.expectedScore {
				t.Errorf("Frame() state = %+v, expected %v with score %d", s, tc.expectedPhase, tc.expectedScore)
			}

			collectFirst := prepare(t)
			collectFirst.OnCollect(tc.final)
			collectFirst.OnTick(1)
			if collectFirst.State() != viaFrame.State() {
				t.Errorf("collect-then-tick = %+v, expected the Frame() result %+v", collectFirst.State(), viaFrame.State())
			}
		})
	}
}

func TestRawTickFirstDropsLatePickup(t *testing.T) {
	// Outside Frame, events apply in call order: an expiring tick ends the
	// session before a pickup delivered after it.
	c := newController(t, defaultConfig(), Hooks{})
	collect(c, 19, 0)
	c.OnTick(89.5)

	c.OnTick(1)
	c.OnCollect(Good)

	s := c.State()
	if s.Phase != PhaseLost {
		t.Errorf("Phase = %v, expected lost", s.Phase)
	}
	if s.Score != 19 || s.ItemsCollected != 19 {
		t.Errorf("State = %+v, expected the late pickup to be dropped", s)
	}
}

func TestFrameResolvesPickupsBeforeTime(t *testing.T) {
	c := newController(t, defaultConfig(), Hooks{})
	collect(c, 19, 0)
	c.OnTick(89.9)

	// The winning pickup and expiry happen in the same frame
	c.Frame(0.5, Good)
	if c.Phase() != PhaseWon {
		t.Errorf("Phase = %v, expected won", c.Phase())
	}

	// Several pickups in one frame all count, up to the terminal transition
	c2 := newController(t, Config{TotalItems: 3, WinThreshold: 1, TimeLimit: 10}, Hooks{})
	accepted := c2.Frame(0.1, Good, Bad, Good, Good)
	s := c2.State()
	if s.ItemsCollected != 3 || s.Score != 1 || s.Phase != PhaseWon {
		t.Errorf("State = %+v, expected 3 collected, score 1, won", s)
	}
	if accepted != 3 {
		t.Errorf("Frame() = %d, expected 3 accepted before the session ended", accepted)
	}
	if n := c2.Frame(0.1, Good); n != 0 {
		t.Errorf("Frame() after the end = %d, expected 0", n)
	}
}

func TestItemsCollectedNeverExceedsTotal(t *testing.T) {
	c := newController(t, Config{TotalItems: 4, WinThreshold: 0, TimeLimit: 10}, Hooks{})
	collect(c, 10, 10)
	if s := c.State(); s.ItemsCollected != 4 {
		t.Errorf("ItemsCollected = %d, expected 4", s.ItemsCollected)
	}
}

func TestCollectHookSeesUpdatedState(t *testing.T) {
	var seen []State
	c := newController(t, defaultConfig(), Hooks{
		OnCollect: func(_ Polarity, s State) { seen = append(seen, s) },
	})
	c.OnCollect(Good)
	c.OnCollect(Bad)

	if len(seen) != 2 {
		t.Fatalf("OnCollect fired %d times, expected 2", len(seen))
	}
	if seen[0].Score != 1 || seen[0].ItemsCollected != 1 {
		t.Errorf("first hook state = %+v", seen[0])
	}
	if seen[1].Score != 0 || seen[1].ItemsCollected != 2 {
		t.Errorf("second hook state = %+v", seen[1])
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero items", Config{TotalItems: 0, WinThreshold: 0, TimeLimit: 90}},
		{"negative items", Config{TotalItems: -3, WinThreshold: 0, TimeLimit: 90}},
		{"unreachable threshold", Config{TotalItems: 20, WinThreshold: 21, TimeLimit: 90}},
		{"zero time", Config{TotalItems: 20, WinThreshold: 15, TimeLimit: 0}},
		{"negative time", Config{TotalItems: 20, WinThreshold: 15, TimeLimit: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.cfg, Hooks{})
			if err == nil {
				t.Fatal("New() should fail")
			}
			if c != nil {
				t.Error("New() should not return a controller on error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v should match ErrInvalidConfig", err)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	if PhasePlaying.String() != "playing" || PhaseWon.String() != "won" || PhaseLost.String() != "lost" {
		t.Error("unexpected phase names")
	}
	if PhasePlaying.Terminal() || !PhaseWon.Terminal() || !PhaseLost.Terminal() {
		t.Error("Terminal() mismatch")
	}
}
