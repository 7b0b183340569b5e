package render

import (
	"github.com/lixenwraith/lantern/parameter"
	"github.com/lixenwraith/lantern/vmath"
)

// Candle is the movable point light. Its radius is driven by the fuel
// simulation; its flicker is display-only state that evolves smoothly
// so the image never strobes.
type Candle struct {
	X, Y   float64
	Radius float64

	flicker  float64 // current multiplier offset around 1.0
	velocity float64
	target   float64
	rerollIn float64

	rng *vmath.FastRand
}

func NewCandle(rng *vmath.FastRand) *Candle {
	return &Candle{
		Radius: parameter.LightRadiusMax,
		rng:    rng,
	}
}

// Advance evolves the flicker term. The value is critically damped
// toward a target that is re-rolled at random intervals; it decays
// toward the target over time and never jumps.
func (c *Candle) Advance(dt float64) {
	c.rerollIn -= dt
	if c.rerollIn <= 0 {
		span := parameter.FlickerRerollMax - parameter.FlickerRerollMin
		c.rerollIn = parameter.FlickerRerollMin + c.rng.Float64()*span
		c.target = (c.rng.Float64()*2 - 1) * parameter.FlickerAmplitude
	}

	// Critically damped spring: accel = w^2 (target-x) - 2w v
	w := parameter.FlickerRate
	accel := w*w*(c.target-c.flicker) - 2*w*c.velocity
	c.velocity += accel * dt
	c.flicker += c.velocity * dt
}

// Flicker returns the current multiplier around 1.0
func (c *Candle) Flicker() float64 {
	return 1.0 + c.flicker
}

// Brightness returns the point-light falloff for a surface at the
// given distance from the candle, floored at the minimum so near
// geometry never renders fully black.
func (c *Candle) Brightness(dist float64) float64 {
	r := c.Radius
	if r <= 0 {
		return parameter.MinBrightness
	}
	if dist > r {
		dist = r
	}
	b := 1.0 - dist/r
	if b < parameter.MinBrightness {
		b = parameter.MinBrightness
	}
	return b
}

// DistanceTo returns the candle distance to a world point
func (c *Candle) DistanceTo(x, y float64) float64 {
	return vmath.Magnitude(x-c.X, y-c.Y)
}
