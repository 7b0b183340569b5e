package parameter

import "time"

// Simulation timing
const (
	// FrameInterval drives both simulation and render passes
	FrameInterval = 33 * time.Millisecond

	// MaxFrameDelta clamps elapsed time per step. A single slow frame
	// must never produce a movement step large enough to tunnel
	// through a wall.
	MaxFrameDelta = 33 * time.Millisecond
)

// Player
const (
	PlayerMoveSpeed   = 2.2 // world units per second
	PlayerStrafeSpeed = 1.8
	PlayerTurnSpeed   = 2.4 // radians per second
	PlayerRadius      = 0.22

	// ShakeDecayRate damps the transient camera shake, per second
	ShakeDecayRate = 6.0
	ShakeAmplitude = 0.05 // radians
)

// Light fuel
const (
	FuelMax       = 100.0
	FuelBurnRate  = 1.4  // units per second
	FuelPickup    = 35.0 // refill per light-source item
	FuelLowLevel  = 20.0 // low-fuel warning threshold
	FuelDrainHit  = 8.0  // hazard attack penalty
	PickupRadius  = 0.45 // world units for item collection
	InteractRange = 0.8
)

// Hazards
const (
	HazardCount       = 3
	HazardSpeed       = 1.3
	HazardRadius      = 0.25
	HazardSightRange  = 6.0
	HazardAttackRange = 0.6
	HazardLoseRange   = 9.0
	HazardAttackPause = 900 * time.Millisecond
	HazardMinSpawnGap = 6.0 // minimum spawn distance from the player
)

// Items
const (
	KeyCount      = 1
	ArtifactCount = 3
	NoteCount     = 2
	LightCount    = 4
)
