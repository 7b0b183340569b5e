package sim

import (
	"strings"
	"testing"

	"github.com/lixenwraith/lantern/maze"
	"github.com/lixenwraith/lantern/vmath"
)

func corridor(width int) *maze.Grid {
	wall := strings.Repeat("#", width)
	open := "#" + strings.Repeat(".", width-2) + "#"
	return maze.FromStrings([]string{wall, open, wall}, 1.0)
}

func TestHazardSpotsVisiblePlayer(t *testing.T) {
	g := corridor(8)
	h := NewHazard(1.5, 1.5)
	p := NewPlayer(4.5, 1.5)

	h.Update(g, p, 0.016, vmath.NewFastRand(1))
	if h.State != HazardChasing {
		t.Errorf("Expected chase on clear sight, got state %d", h.State)
	}
}

func TestHazardIgnoresPlayerBehindWall(t *testing.T) {
	g := maze.FromStrings([]string{
		"#####",
		"#.#.#",
		"#####",
	}, 1.0)
	h := NewHazard(1.5, 1.5)
	p := NewPlayer(3.5, 1.5)

	for i := 0; i < 50; i++ {
		h.Update(g, p, 0.016, vmath.NewFastRand(1))
	}
	if h.State != HazardIdle {
		t.Errorf("Expected idle with the pillar blocking sight, got state %d", h.State)
	}
}

func TestHazardIgnoresPlayerBeyondSightRange(t *testing.T) {
	g := corridor(14)
	h := NewHazard(1.5, 1.5)
	p := NewPlayer(12.5, 1.5)

	h.Update(g, p, 0.016, vmath.NewFastRand(1))
	if h.State != HazardIdle {
		t.Errorf("Expected idle beyond sight range, got state %d", h.State)
	}
}

func TestHazardChaseMovesTowardPlayer(t *testing.T) {
	g := corridor(8)
	h := NewHazard(1.5, 1.5)
	h.State = HazardChasing
	p := NewPlayer(4.5, 1.5)

	h.Update(g, p, 0.1, vmath.NewFastRand(1))
	if h.X <= 1.5 {
		t.Errorf("Expected the hazard to close in, got x %v", h.X)
	}
	if h.TargetX != p.X || h.TargetY != p.Y {
		t.Error("Expected the chase target pinned to the player")
	}
}

func TestHazardLosesDistantPlayer(t *testing.T) {
	g := corridor(14)
	h := NewHazard(1.5, 1.5)
	h.State = HazardChasing
	p := NewPlayer(12.5, 1.5)

	h.Update(g, p, 0.016, vmath.NewFastRand(1))
	if h.State != HazardIdle {
		t.Errorf("Expected the chase dropped past lose range, got state %d", h.State)
	}
}

func TestHazardAttackCooldown(t *testing.T) {
	g := corridor(8)
	h := NewHazard(1.5, 1.5)
	h.State = HazardChasing
	p := NewPlayer(2.0, 1.5)
	rng := vmath.NewFastRand(1)

	if hit := h.Update(g, p, 0.016, rng); hit {
		t.Error("Expected the transition step to land no attack")
	}
	if h.State != HazardAttacking {
		t.Fatalf("Expected attacking state in reach, got %d", h.State)
	}

	if hit := h.Update(g, p, 0.016, rng); !hit {
		t.Error("Expected the first attack to land")
	}
	if hit := h.Update(g, p, 0.016, rng); hit {
		t.Error("Expected the cooldown to gate the second attack")
	}

	// Burn through the pause, then the next swing lands
	for i := 0; i < 60; i++ {
		if h.Update(g, p, 0.033, rng) {
			return
		}
	}
	t.Error("Expected another attack after the cooldown expired")
}

func TestHazardBreaksOffWhenPlayerRetreats(t *testing.T) {
	g := corridor(8)
	h := NewHazard(1.5, 1.5)
	h.State = HazardAttacking
	p := NewPlayer(4.5, 1.5)

	h.Update(g, p, 0.016, vmath.NewFastRand(1))
	if h.State != HazardChasing {
		t.Errorf("Expected a retreating player to force a chase, got state %d", h.State)
	}
}
