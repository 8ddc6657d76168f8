package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pickup-arena/internal/session"
)

// SampleRate is the output rate of every synthesized cue.
const SampleRate = beep.SampleRate(44100)

// Sink receives the session's sound cues.
type Sink interface {
	// Start begins the background music of a new session.
	Start()
	// Collect plays the cue for one pickup.
	Collect(p session.Polarity)
	// End stops the music and plays the win or lose jingle.
	End(phase session.Phase)
	Close() error
}

// Nop is a Sink that plays nothing.
type Nop struct{}

func (Nop) Start()                   {}
func (Nop) Collect(session.Polarity) {}
func (Nop) End(session.Phase)        {}
func (Nop) Close() error             { return nil }

// Speaker plays cues through the default audio device.
type Speaker struct {
	mu     sync.Mutex
	volume float64
	mixer  *beep.Mixer
	music  *beep.Ctrl
	closed bool
}

var speakerOnce struct {
	sync.Once
	err error
}

// NewSpeaker opens the audio device. volume is linear, 1 = unscaled.
// The device is opened once per process; later calls share it.
func NewSpeaker(volume float64) (*Speaker, error) {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond))
	})
	if speakerOnce.err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", speakerOnce.err)
	}

	s := &Speaker{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Start loops the background music, replacing any previous loop.
func (s *Speaker) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	s.stopMusic()
	vol := s.volume
	s.music = &beep.Ctrl{Streamer: Repeat(func() beep.Streamer { return Music(SampleRate, vol) })}
	s.mixer.Add(s.music)
}

// Collect plays the good chime or the bad buzz.
func (s *Speaker) Collect(p session.Polarity) {
	if p == session.Good {
		s.play(GoodChime(SampleRate, s.volume))
		return
	}
	s.play(BadBuzz(SampleRate, s.volume))
}

// End stops the music and plays the jingle for phase.
func (s *Speaker) End(phase session.Phase) {
	s.mu.Lock()
	speaker.Lock()
	s.stopMusic()
	speaker.Unlock()
	s.mu.Unlock()

	if phase == session.PhaseWon {
		s.play(WinJingle(SampleRate, s.volume))
		return
	}
	s.play(LoseJingle(SampleRate, s.volume))
}

// Close silences everything. The device itself stays open for the process.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}

// stopMusic drains the current loop; a Ctrl without a streamer ends and the
// mixer drops it. Callers hold both locks.
func (s *Speaker) stopMusic() {
	if s.music == nil {
		return
	}
	s.music.Streamer = nil
	s.music = nil
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}
