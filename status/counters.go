// Package status exposes lock-free runtime counters. The session loop
// writes them every frame; frontends read them for the debug line.
package status

import (
	"fmt"
	"sync/atomic"
)

// Counters is the shared metrics block. Zero value is ready to use.
type Counters struct {
	Frames      atomic.Int64
	Rays        atomic.Int64
	SimSteps    atomic.Int64
	FrameMicros atomic.Int64 // duration of the last full frame
}

// Snapshot is a consistent-enough copy for display. Individual loads
// are atomic; cross-field skew of one frame is acceptable for a debug
// line.
type Snapshot struct {
	Frames      int64
	Rays        int64
	SimSteps    int64
	FrameMicros int64
}

func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Frames:      c.Frames.Load(),
		Rays:        c.Rays.Load(),
		SimSteps:    c.SimSteps.Load(),
		FrameMicros: c.FrameMicros.Load(),
	}
}

// DebugLine formats the snapshot for the frontend status row
func (s Snapshot) DebugLine() string {
	fps := 0.0
	if s.FrameMicros > 0 {
		fps = 1e6 / float64(s.FrameMicros)
	}
	return fmt.Sprintf("frames=%d rays=%d steps=%d frame=%dµs fps=%.1f",
		s.Frames, s.Rays, s.SimSteps, s.FrameMicros, fps)
}
