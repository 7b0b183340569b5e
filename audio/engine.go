// Package audio plays short generated cues through the speaker. Sound
// is always optional: a failed speaker init leaves the engine silent
// and every Play becomes a no-op.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const engineRate = beep.SampleRate(44100)

// Cue identifies a game sound
type Cue uint8

const (
	CuePickup Cue = iota
	CueNote
	CueHazardHit
	CueDoorLocked
	CueExit
	CueLowFuel
)

// Engine mixes generated tones into one speaker stream
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	lowFuel     *beep.Ctrl
	initialized bool
	muted       bool
}

func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure is returned for logging but
// leaves the engine in a safe silent state.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(engineRate, engineRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup silences and releases the speaker
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	if e.lowFuel != nil {
		e.lowFuel.Paused = true
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.initialized = false
}

// ToggleMute flips the mute state and reports the new value
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = !e.muted
	if e.muted && e.lowFuel != nil {
		e.lowFuel.Paused = true
	}
	return e.muted
}

// Play fires one cue. Silent when the engine is muted or never
// initialized.
func (e *Engine) Play(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted {
		return
	}

	switch c {
	case CuePickup:
		e.tone(880, 60*time.Millisecond)
	case CueNote:
		e.tone(660, 90*time.Millisecond)
	case CueHazardHit:
		e.add(beep.Take(engineRate.N(160*time.Millisecond), newBuzz(engineRate, 110)))
	case CueDoorLocked:
		e.tone(220, 120*time.Millisecond)
	case CueExit:
		e.tone(523, 90*time.Millisecond)
		e.tone(784, 180*time.Millisecond)
	case CueLowFuel:
		e.startLowFuel()
	}
}

// StopLowFuel pauses the warning pulse once fuel recovers
func (e *Engine) StopLowFuel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.lowFuel != nil {
		speaker.Lock()
		e.lowFuel.Paused = true
		speaker.Unlock()
	}
}

func (e *Engine) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(engineRate, freq)
	if err != nil {
		return
	}
	e.add(beep.Take(engineRate.N(d), sine))
}

func (e *Engine) add(s beep.Streamer) {
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// startLowFuel loops a soft pulse until StopLowFuel. Repeated calls
// while already sounding are absorbed.
func (e *Engine) startLowFuel() {
	if e.lowFuel != nil {
		speaker.Lock()
		e.lowFuel.Paused = false
		speaker.Unlock()
		return
	}
	ctrl := &beep.Ctrl{Streamer: newPulse(engineRate)}
	e.lowFuel = ctrl
	e.add(ctrl)
}

// buzz is a rough square tone used for hits
type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzz(sr beep.SampleRate, freq float64) *buzz {
	return &buzz{sr: sr, freq: freq}
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)
		v := 0.2 * math.Copysign(1, math.Sin(2*math.Pi*b.freq*t))
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *buzz) Err() error { return nil }

// pulse is a slow amplitude-gated sine used for the low-fuel warning
type pulse struct {
	sr    beep.SampleRate
	pos   int
	cycle int
}

func newPulse(sr beep.SampleRate) *pulse {
	return &pulse{sr: sr, cycle: sr.N(1200 * time.Millisecond)}
}

func (p *pulse) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(p.pos) / float64(p.sr)
		phase := float64(p.pos%p.cycle) / float64(p.cycle)

		amp := 0.0
		if phase < 0.2 {
			amp = 0.12 * math.Sin(phase/0.2*math.Pi)
		}
		v := amp * math.Sin(2*math.Pi*330*t)
		samples[i][0] = v
		samples[i][1] = v
		p.pos++
	}
	return len(samples), true
}

func (p *pulse) Err() error { return nil }
