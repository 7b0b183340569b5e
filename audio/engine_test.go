package audio

import (
	"math"
	"testing"
)

func TestPlayWithoutInitIsNoOp(t *testing.T) {
	e := NewEngine()
	// Must not panic or touch the speaker
	e.Play(CuePickup)
	e.Play(CueLowFuel)
	e.StopLowFuel()
	e.Cleanup()
}

func TestToggleMute(t *testing.T) {
	e := NewEngine()
	if !e.ToggleMute() {
		t.Error("Expected first toggle to mute")
	}
	if e.ToggleMute() {
		t.Error("Expected second toggle to unmute")
	}
}

func TestBuzzSamplesBounded(t *testing.T) {
	b := newBuzz(engineRate, 110)
	buf := make([][2]float64, 512)

	n, ok := b.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected a full buffer, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
			t.Fatalf("Sample %d out of range: %v", i, s)
		}
	}
	if b.Err() != nil {
		t.Errorf("Expected no stream error, got %v", b.Err())
	}
}

func TestPulseSamplesBounded(t *testing.T) {
	p := newPulse(engineRate)
	buf := make([][2]float64, 4096)

	var peak float64
	for pass := 0; pass < 20; pass++ {
		n, ok := p.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Expected the pulse to stream forever, got n=%d ok=%v", n, ok)
		}
		for _, s := range buf {
			if v := math.Abs(s[0]); v > peak {
				peak = v
			}
		}
	}
	if peak == 0 {
		t.Error("Expected the pulse to produce audible samples")
	}
	if peak > 0.5 {
		t.Errorf("Expected a soft warning pulse, got peak %v", peak)
	}
}
