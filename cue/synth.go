package cue

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/plus3/tetra/tetra"
)

// tone is a sine note with a short linear attack and release.
type tone struct {
	freq    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func newTone(freq float64, d time.Duration) *tone {
	total := sampleRate.N(d)
	return &tone{
		freq:    freq,
		total:   total,
		attack:  min(sampleRate.N(5*time.Millisecond), total/2),
		release: min(sampleRate.N(30*time.Millisecond), total/2),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		env := 1.0
		if t.attack > 0 && t.pos < t.attack {
			env = float64(t.pos) / float64(t.attack)
		}
		if left := t.total - t.pos; t.release > 0 && left < t.release {
			env = float64(left) / float64(t.release)
		}
		v := 0.25 * env * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// arpeggio cycles through notes forever.
type arpeggio struct {
	notes []float64
	step  time.Duration
	cur   *tone
	next  int
}

func (a *arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if a.cur == nil {
			a.cur = newTone(a.notes[a.next], a.step)
			a.next = (a.next + 1) % len(a.notes)
		}
		m, ok := a.cur.Stream(samples[n:])
		n += m
		if !ok || m == 0 {
			a.cur = nil
		}
	}
	return n, true
}

func (a *arpeggio) Err() error { return nil }

func notes(step time.Duration, freqs ...float64) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = newTone(f, step)
	}
	return beep.Seq(parts...)
}

// withVolume scales s by a linear factor; zero or less mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func cueStreamer(id tetra.CueID) beep.Streamer {
	switch id {
	case tetra.CueTheme:
		return &arpeggio{
			notes: []float64{220.00, 261.63, 329.63, 440.00, 329.63, 261.63},
			step:  180 * time.Millisecond,
		}
	case tetra.CueGameOver:
		return notes(220*time.Millisecond, 440.00, 392.00, 329.63, 261.63, 196.00)
	default:
		return notes(70*time.Millisecond, 659.25, 987.77)
	}
}
