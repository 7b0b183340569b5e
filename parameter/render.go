package parameter

import "math"

// Renderer geometry
const (
	// FOV is the horizontal field of view in radians
	FOV = math.Pi / 3

	// RayCount is the default number of screen columns marched per
	// frame. May be lower than the raster width; columns then span
	// multiple pixels.
	RayCount = 320

	// MaxDepth is the far plane in world units; rays past it render as
	// fog
	MaxDepth = 12.0

	// WallHeightScale converts corrected distance to strip height
	WallHeightScale = 1.0

	// SpriteHeightScale converts sprite distance to billboard height
	SpriteHeightScale = 0.6
)

// Lighting
const (
	// MinBrightness is the falloff floor so near geometry never goes
	// fully black
	MinBrightness = 0.06

	// LightRadiusMax is the candle radius at full fuel, world units
	LightRadiusMax = 8.0

	// LightRadiusMin is the candle radius when fuel is exhausted
	LightRadiusMin = 1.5

	// FlickerAmplitude bounds the flicker term around 1.0
	FlickerAmplitude = 0.08

	// FlickerRate is the spring frequency pulling the flicker value
	// toward its current target, per second
	FlickerRate = 9.0

	// FlickerRerollMin/Max bound the interval between target re-rolls,
	// seconds
	FlickerRerollMin = 0.08
	FlickerRerollMax = 0.25
)

// Sprites
const (
	// SpriteEpsilon rejects sprites close enough to blow up the
	// projected size
	SpriteEpsilon = 0.05

	// SpriteFOVMargin widens the angular cull so billboards partially
	// inside the view cone still draw
	SpriteFOVMargin = 0.2

	// OcclusionTolerance absorbs column-boundary rounding when testing
	// sprite distance against the wall depth buffer
	OcclusionTolerance = 0.1
)

// Display-only breathing effect
const (
	WarpAmplitude = 1.6 // pixels at zero light distance
	WarpRate      = 0.7 // radians per second
)
