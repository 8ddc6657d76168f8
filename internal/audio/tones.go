// Package audio synthesizes the game's sound cues and plays them through the
// system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator produces a fixed-length periodic wave.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

// Tone returns a streamer playing freq for d.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a linear attack and release to a stream of known length.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	length   int
}

// Fade shapes s, which must last d, with linear attack and release ramps.
func Fade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		length:   rate.N(d),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	releaseStart := f.length - f.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.attack > 0 && f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if f.release > 0 && f.position >= releaseStart {
			vol = max(0, float64(f.length-f.position)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// repeat restarts a freshly built stream each time the previous one drains.
type repeat struct {
	build func() beep.Streamer
	cur   beep.Streamer
}

// Repeat plays build() back to back forever.
func Repeat(build func() beep.Streamer) beep.Streamer {
	return &repeat{build: build, cur: build()}
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		sn, sok := r.cur.Stream(samples[n:])
		n += sn
		if !sok || sn == 0 {
			if r.cur.Err() != nil {
				return n, n > 0
			}
			r.cur = r.build()
		}
	}
	return n, true
}

func (r *repeat) Err() error { return r.cur.Err() }

// gain scales s linearly; zero or less is silent.
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// note is one step of a jingle.
type note struct {
	freq float64
	dur  time.Duration
}

func melody(notes []note, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, Fade(Tone(n.freq, n.dur, wave, rate), n.dur, 5*time.Millisecond, n.dur/3, rate))
	}
	return beep.Seq(parts...)
}

// GoodChime is the two-note rising chime for a good pickup.
func GoodChime(rate beep.SampleRate, volume float64) beep.Streamer {
	return gain(melody([]note{
		{987.77, 70 * time.Millisecond},
		{1318.51, 140 * time.Millisecond},
	}, WaveSine, rate), volume)
}

// BadBuzz is the low buzz for a bad pickup.
func BadBuzz(rate beep.SampleRate, volume float64) beep.Streamer {
	d := 180 * time.Millisecond
	return gain(Fade(Tone(110, d, WaveSaw, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate), volume*0.6)
}

// WinJingle is the ascending arpeggio played when a session is won.
func WinJingle(rate beep.SampleRate, volume float64) beep.Streamer {
	return gain(melody([]note{
		{523.25, 120 * time.Millisecond},
		{659.25, 120 * time.Millisecond},
		{783.99, 120 * time.Millisecond},
		{1046.50, 320 * time.Millisecond},
	}, WaveSquare, rate), volume*0.5)
}

// LoseJingle is the descending phrase played when a session is lost.
func LoseJingle(rate beep.SampleRate, volume float64) beep.Streamer {
	return gain(melody([]note{
		{392.00, 180 * time.Millisecond},
		{329.63, 180 * time.Millisecond},
		{261.63, 400 * time.Millisecond},
	}, WaveSaw, rate), volume*0.4)
}

// Music is one bar of the background loop.
func Music(rate beep.SampleRate, volume float64) beep.Streamer {
	const step = 150 * time.Millisecond
	return gain(melody([]note{
		{220.00, step}, {261.63, step}, {329.63, step}, {261.63, step},
		{196.00, step}, {246.94, step}, {293.66, step}, {246.94, step},
	}, WaveSine, rate), volume*0.25)
}
