// Package cue plays the game's audio cues through a beep mixer.
package cue

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/tetra/tetra"
)

const sampleRate = beep.SampleRate(44100)

type voice struct {
	ctrl *beep.Ctrl
	done atomic.Bool
}

// Player implements tetra.AudioCue. Until Init is called nothing reaches
// the speaker, but cues are still tracked and can be pulled through Stream.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	voices      [tetra.CueCount]*voice
	initialized bool
}

var _ tetra.AudioCue = (*Player)(nil)

// NewPlayer creates a player. volume is a linear gain, 1 being unchanged.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	if p.initialized {
		p.mu.Unlock()
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.mu.Unlock()
		return err
	}
	p.initialized = true
	p.mu.Unlock()

	speaker.Play(p)
	return nil
}

// Close stops every cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, v := range p.voices {
		if v != nil {
			v.ctrl.Streamer = nil
			v.done.Store(true)
			p.voices[id] = nil
		}
	}
	p.mixer.Clear()
}

// Play starts a cue. The theme loops and is not restarted while it plays;
// one-shot cues start a new voice on every call.
func (p *Player) Play(id tetra.CueID) {
	if id >= tetra.CueCount {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if id == tetra.CueTheme {
		if v := p.voices[id]; v != nil && !v.done.Load() {
			return
		}
	}

	v := &voice{}
	s := beep.Seq(cueStreamer(id), beep.Callback(func() { v.done.Store(true) }))
	v.ctrl = &beep.Ctrl{Streamer: withVolume(s, p.volume), Paused: false}
	p.voices[id] = v
	p.mixer.Add(v.ctrl)
}

// Stop silences a cue.
func (p *Player) Stop(id tetra.CueID) {
	if id >= tetra.CueCount {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if v := p.voices[id]; v != nil {
		v.ctrl.Streamer = nil
		v.done.Store(true)
		p.voices[id] = nil
	}
}

func (p *Player) IsPlaying(id tetra.CueID) bool {
	if id >= tetra.CueCount {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	v := p.voices[id]
	return v != nil && !v.done.Load()
}

// Active returns the number of streams in the mixer.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Stream mixes the playing cues into samples. The player never drains, so
// it can stay attached to the speaker for the life of the process.
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, _ = p.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (p *Player) Err() error { return nil }
