// Package sim holds the per-run simulation state: the player, the
// hazards stalking the maze, and the collectible items. Entities live
// for exactly one maze instance; a new maze rebuilds all of them.
package sim

import (
	"math"

	"github.com/lixenwraith/lantern/parameter"
	"github.com/lixenwraith/lantern/vmath"
)

// Player is the viewer entity
type Player struct {
	X, Y   float64
	Angle  float64 // facing, kept normalized to (-Pi, Pi]
	Radius float64

	Fuel      float64
	Keys      int
	Artifacts int
	Notes     int

	shakeMag   float64
	shakePhase float64
}

func NewPlayer(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Angle:  0,
		Radius: parameter.PlayerRadius,
		Fuel:   parameter.FuelMax,
	}
}

// Turn rotates the facing, keeping it normalized
func (p *Player) Turn(delta float64) {
	p.Angle = vmath.NormalizeAngle(p.Angle + delta)
}

// Intent converts movement input (forward/strafe in [-1, 1]) into an
// intended world displacement for this frame
func (p *Player) Intent(forward, strafe, dt float64) (dx, dy float64) {
	sin, cos := math.Sincos(p.Angle)
	dx = (cos*forward*parameter.PlayerMoveSpeed - sin*strafe*parameter.PlayerStrafeSpeed) * dt
	dy = (sin*forward*parameter.PlayerMoveSpeed + cos*strafe*parameter.PlayerStrafeSpeed) * dt
	return dx, dy
}

// Advance burns fuel and decays the transient view shake.
// fuelScale < 1 models the efficiency upgrade.
func (p *Player) Advance(dt, fuelScale float64) {
	p.Fuel -= parameter.FuelBurnRate * fuelScale * dt
	if p.Fuel < 0 {
		p.Fuel = 0
	}

	p.shakeMag *= math.Exp(-parameter.ShakeDecayRate * dt)
	if p.shakeMag < 1e-4 {
		p.shakeMag = 0
	}
	p.shakePhase += dt * 40
}

// Shake kicks the transient camera wobble, used on hazard hits
func (p *Player) Shake() {
	p.shakeMag = 1.0
}

// CameraAngle is the facing plus the transient shake offset. The
// renderer consumes this; collision and simulation always use Angle.
func (p *Player) CameraAngle() float64 {
	if p.shakeMag == 0 {
		return p.Angle
	}
	return p.Angle + math.Sin(p.shakePhase)*parameter.ShakeAmplitude*p.shakeMag
}

// LightRadius maps remaining fuel to the candle radius
func (p *Player) LightRadius() float64 {
	t := vmath.Clamp(p.Fuel/parameter.FuelMax, 0, 1)
	return vmath.Lerp(parameter.LightRadiusMin, parameter.LightRadiusMax, t)
}

// LowFuel reports whether the warning threshold has been crossed
func (p *Player) LowFuel() bool {
	return p.Fuel <= parameter.FuelLowLevel
}
