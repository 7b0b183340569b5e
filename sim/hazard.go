package sim

import (
	"math"

	"github.com/lixenwraith/lantern/maze"
	"github.com/lixenwraith/lantern/parameter"
	"github.com/lixenwraith/lantern/physics"
	"github.com/lixenwraith/lantern/raycast"
	"github.com/lixenwraith/lantern/vmath"
)

// HazardState is the behavioral mode of a hazard
type HazardState uint8

const (
	HazardIdle HazardState = iota
	HazardChasing
	HazardAttacking
)

// Hazard is a hostile entity. It wanders until it has line of sight to
// the player inside its sight range, chases while contact holds, and
// attacks within reach.
type Hazard struct {
	X, Y   float64
	Radius float64
	State  HazardState

	// TargetX/Y is where the hazard is currently heading: a wander
	// point when idle, the player's position while chasing
	TargetX, TargetY float64

	cooldown float64 // seconds until the next attack may land
	rewander float64 // seconds until a new wander target is picked
}

func NewHazard(x, y float64) *Hazard {
	return &Hazard{
		X:       x,
		Y:       y,
		Radius:  parameter.HazardRadius,
		State:   HazardIdle,
		TargetX: x,
		TargetY: y,
	}
}

// Update advances the state machine one step. Returns true when an
// attack lands this step; the caller applies the consequences.
func (h *Hazard) Update(g *maze.Grid, p *Player, dt float64, rng *vmath.FastRand) bool {
	dist := vmath.Magnitude(p.X-h.X, p.Y-h.Y)
	seen := dist <= parameter.HazardSightRange && raycast.LineOfSight(g, h.X, h.Y, p.X, p.Y)

	if h.cooldown > 0 {
		h.cooldown -= dt
	}

	switch h.State {
	case HazardIdle:
		if seen {
			h.State = HazardChasing
			break
		}
		h.wander(g, dt, rng)

	case HazardChasing:
		if dist > parameter.HazardLoseRange {
			h.State = HazardIdle
			break
		}
		if dist <= parameter.HazardAttackRange {
			h.State = HazardAttacking
			break
		}
		h.TargetX, h.TargetY = p.X, p.Y
		h.step(g, parameter.HazardSpeed, dt)

	case HazardAttacking:
		if dist > parameter.HazardAttackRange {
			h.State = HazardChasing
			break
		}
		if h.cooldown <= 0 {
			h.cooldown = parameter.HazardAttackPause.Seconds()
			return true
		}
	}

	return false
}

// wander drifts toward a nearby random open cell, re-rolled on a timer
func (h *Hazard) wander(g *maze.Grid, dt float64, rng *vmath.FastRand) {
	h.rewander -= dt
	arrived := vmath.Magnitude(h.TargetX-h.X, h.TargetY-h.Y) < 0.2
	if h.rewander <= 0 || arrived {
		h.rewander = 2.0 + rng.Float64()*3.0

		col, row := g.WorldToGrid(h.X, h.Y)
		for try := 0; try < 8; try++ {
			nc := col + rng.Intn(7) - 3
			nr := row + rng.Intn(7) - 3
			if g.CellAt(nc, nr) == maze.Path {
				h.TargetX, h.TargetY = g.GridToWorld(nc, nr)
				break
			}
		}
	}
	h.step(g, parameter.HazardSpeed*0.5, dt)
}

// step integrates toward the current target through the collision
// integrator, so hazards slide along walls like the player does
func (h *Hazard) step(g *maze.Grid, speed, dt float64) {
	dx, dy := vmath.Normalize(h.TargetX-h.X, h.TargetY-h.Y)
	if dx == 0 && dy == 0 {
		return
	}
	h.X, h.Y = physics.Move(g, h.X, h.Y, dx*speed*dt, dy*speed*dt, h.Radius)
}

// DistanceTo returns the distance to a world point
func (h *Hazard) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-h.X, y-h.Y)
}
