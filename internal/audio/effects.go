// Package audio synthesizes the game's sound effects with beep.
// No samples are shipped; every sound is generated at play time.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a bounded oscillator whose frequency glides linearly from
// startFreq to endFreq over its duration. Equal frequencies give a
// steady pitch.
type tone struct {
	startFreq float64
	endFreq   float64
	wave      Wave
	rate      beep.SampleRate

	phase float64
	total int
	pos   int
}

// NewTone creates a fixed-pitch oscillator streamer.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep creates an oscillator that glides from one pitch to another.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		startFreq: from,
		endFreq:   to,
		wave:      wave,
		rate:      rate,
		total:     rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, false
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (t.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.pos) / float64(t.total)
		freq := t.startFreq + (t.endFreq-t.startFreq)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // keep in [0, 1)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with attack/release volume ramps over duration d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, false
		}

		vol := 1.0
		if e.pos < e.attack && e.attack > 0 {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; remaining < e.release && e.release > 0 {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer's loudness. Zero or negative volume means
// silent; math.Log2(0) would be -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect builders

// collectSound is a rising two-note ding for picking up a star.
func collectSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const noteDur = 90 * time.Millisecond
	n1 := NewEnvelope(NewTone(880, noteDur, WaveSine, rate), noteDur, 5*time.Millisecond, 40*time.Millisecond, rate)
	n2 := NewEnvelope(NewTone(1318.51, noteDur, WaveSine, rate), noteDur, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), vol)
}

// penaltySound is a harsh low buzz for a decimal penalty.
func penaltySound(rate beep.SampleRate, vol float64) beep.Streamer {
	const dur = 200 * time.Millisecond
	buzz := NewEnvelope(NewTone(100, dur, WaveSaw, rate), dur, 5*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(buzz, vol)
}

// winSound is a three-note major chime for matching the target.
func winSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const noteDur = 130 * time.Millisecond
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	streamers := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		streamers[i] = NewEnvelope(NewTone(f, noteDur, WaveSquare, rate), noteDur, 5*time.Millisecond, 50*time.Millisecond, rate)
	}
	return newVolume(beep.Seq(streamers...), vol)
}

// gameOverSound is a long falling tone for running out of fuel.
func gameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const dur = 700 * time.Millisecond
	fall := NewEnvelope(NewSweep(440, 110, dur, WaveSine, rate), dur, 10*time.Millisecond, 250*time.Millisecond, rate)
	return newVolume(fall, vol)
}
