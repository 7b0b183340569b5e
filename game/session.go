// Package game runs one maze run end to end: maze construction with
// its retry policy, the fixed simulate-then-render frame order, and
// run resolution into the progression record.
package game

import (
	"time"

	"github.com/lixenwraith/lantern/audio"
	"github.com/lixenwraith/lantern/input"
	"github.com/lixenwraith/lantern/maze"
	"github.com/lixenwraith/lantern/parameter"
	"github.com/lixenwraith/lantern/physics"
	"github.com/lixenwraith/lantern/progress"
	"github.com/lixenwraith/lantern/render"
	"github.com/lixenwraith/lantern/sim"
	"github.com/lixenwraith/lantern/status"
	"github.com/lixenwraith/lantern/vmath"
)

// Outcome is the resolution state of a run
type Outcome uint8

const (
	OutcomeOpen Outcome = iota
	OutcomeWon
	OutcomeLostFuel
	OutcomeLostSlain
	OutcomeQuit
)

// seedMix derives per-attempt and per-subsystem seeds from the run
// seed so every stream stays deterministic but decorrelated
const seedMix = 0x9E3779B97F4A7C15

// Config assembles one session. Zero fields fall back to parameter
// defaults; Record, Audio and Counters are optional collaborators.
type Config struct {
	Seed          uint64
	Width, Height int
	RayCount      int

	Record   *progress.Record
	Audio    *audio.Engine
	Counters *status.Counters
}

// Session is one run of the maze. Single-goroutine: frontends feed
// intents and call Step from the same loop.
type Session struct {
	cfg Config

	maze     *maze.Maze
	grid     *maze.Grid
	player   *sim.Player
	hazards  []*sim.Hazard
	items    []*sim.Item
	door      *sim.Item
	renderer  *render.Renderer
	wanderRng *vmath.FastRand

	outcome   Outcome
	paused    bool
	muted     bool
	elapsed   float64
	lastTick  time.Time
	hitsTaken bool
	lowFuelOn bool

	message    string
	messageFor float64

	// Per-frame intent accumulators, reset every Advance
	forward  float64
	strafe   float64
	turn     float64
	interact bool
}

// NewSession builds the maze, places entities and prepares the
// renderer. Maze generation retries with derived seeds until an exit
// qualifies, then falls back to forcing one.
func NewSession(cfg Config) *Session {
	if cfg.Width <= 0 {
		cfg.Width = parameter.MazeWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = parameter.MazeHeight
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	m := buildMaze(cfg)

	s := &Session{
		cfg:  cfg,
		maze: m,
		grid: m.Grid,
	}

	x, y := m.ResolveSpawn()
	s.player = sim.NewPlayer(x, y)

	placeRng := vmath.NewFastRand(m.Seed ^ seedMix)
	s.items = sim.PlaceItems(m, placeRng)
	s.hazards = sim.PlaceHazards(m, placeRng)
	for _, it := range s.items {
		if it.Kind == render.SpriteDoor {
			s.door = it
		}
	}

	s.renderer = render.NewRenderer(cfg.RayCount, vmath.NewFastRand(m.Seed+seedMix))
	s.lastTick = time.Now()
	return s
}

// buildMaze retries generation with derived seeds until an exit
// candidate qualifies, then forces one on the last attempt
func buildMaze(cfg Config) *maze.Maze {
	var m *maze.Maze
	for attempt := 0; attempt < parameter.ExitRetryLimit; attempt++ {
		seed := cfg.Seed + uint64(attempt)*seedMix
		m = maze.Generate(maze.Config{
			Width:         cfg.Width,
			Height:        cfg.Height,
			CellSize:      parameter.MazeCellSize,
			Seed:          seed,
			DepthLimit:    parameter.CarveDepthLimit,
			BranchChance:  parameter.CarveBranchChance,
			SpawnCorridor: parameter.SpawnCorridorLength,
		})
		if m.Exit != nil {
			return m
		}
	}
	m.ForceExit()
	return m
}

// Apply feeds one intent into the current frame. Movement intents
// accumulate until the next Advance; system intents act immediately.
func (s *Session) Apply(in input.Intent) {
	switch in.Type {
	case input.IntentQuit:
		if s.outcome == OutcomeOpen {
			s.outcome = OutcomeQuit
		}
	case input.IntentPause:
		s.paused = !s.paused
	case input.IntentToggleMute:
		if s.cfg.Audio != nil {
			s.muted = s.cfg.Audio.ToggleMute()
		}
	case input.IntentMoveForward:
		s.forward += in.Amount
	case input.IntentMoveBack:
		s.forward -= in.Amount
	case input.IntentStrafeLeft:
		s.strafe -= in.Amount
	case input.IntentStrafeRight:
		s.strafe += in.Amount
	case input.IntentTurnLeft:
		s.turn -= in.Amount
	case input.IntentTurnRight:
		s.turn += in.Amount
	case input.IntentInteract:
		s.interact = true
	}
}

// Step advances the simulation then renders into f. Simulation always
// precedes rendering within a frame; the image never shows a state the
// simulation has not committed.
func (s *Session) Step(now time.Time, f *render.Frame) {
	started := time.Now()

	dt := s.Advance(now)
	s.Render(f, dt)

	if s.cfg.Counters != nil {
		s.cfg.Counters.FrameMicros.Store(time.Since(started).Microseconds())
	}
}

// Advance consumes the accumulated intents and moves the simulation by
// one clamped time step. Returns the dt actually applied.
func (s *Session) Advance(now time.Time) float64 {
	dt := now.Sub(s.lastTick).Seconds()
	s.lastTick = now

	// Clamp so a stalled frame can never step an entity through a wall
	if max := parameter.MaxFrameDelta.Seconds(); dt > max {
		dt = max
	}
	if dt < 0 {
		dt = 0
	}

	if s.paused || s.outcome != OutcomeOpen {
		s.resetIntents()
		return dt
	}

	s.elapsed += dt
	if s.messageFor > 0 {
		s.messageFor -= dt
	}

	s.advancePlayer(dt)
	s.collectItems()
	s.advanceHazards(dt)
	s.checkFuel()
	s.checkExit()

	s.resetIntents()
	if s.cfg.Counters != nil {
		s.cfg.Counters.SimSteps.Add(1)
	}
	return dt
}

// Render draws the committed simulation state into f
func (s *Session) Render(f *render.Frame, dt float64) {
	candle := s.renderer.Candle()
	candle.X, candle.Y = s.player.X, s.player.Y
	candle.Radius = s.player.LightRadius()

	view := render.View{X: s.player.X, Y: s.player.Y, Angle: s.player.CameraAngle()}
	s.renderer.Draw(f, s.grid, view, s.sprites(), s.elapsed, dt)

	if s.cfg.Counters != nil {
		s.cfg.Counters.Frames.Add(1)
		s.cfg.Counters.Rays.Add(int64(s.renderer.RayCount()))
	}
}

func (s *Session) advancePlayer(dt float64) {
	turn := vmath.Clamp(s.turn, -1, 1)
	s.player.Turn(turn * parameter.PlayerTurnSpeed * dt)

	speedScale := 1.0
	fuelScale := 1.0
	if s.cfg.Record != nil {
		speedScale = s.cfg.Record.SpeedScale()
		fuelScale = s.cfg.Record.FuelScale()
	}

	forward := vmath.Clamp(s.forward, -1, 1) * speedScale
	strafe := vmath.Clamp(s.strafe, -1, 1) * speedScale
	dx, dy := s.player.Intent(forward, strafe, dt)
	s.player.X, s.player.Y = physics.Move(s.grid, s.player.X, s.player.Y, dx, dy, s.player.Radius)

	s.player.Advance(dt, fuelScale)
}

func (s *Session) collectItems() {
	for _, it := range s.items {
		if it.Collected || it.Kind == render.SpriteDoor {
			continue
		}
		if vmath.Magnitude(it.X-s.player.X, it.Y-s.player.Y) > parameter.PickupRadius {
			continue
		}

		it.Collected = true
		switch it.Kind {
		case render.SpriteKey:
			s.player.Keys++
			s.note("You pick up a tarnished key.")
			s.play(audio.CuePickup)
		case render.SpriteArtifact:
			s.player.Artifacts++
			s.note("An artifact hums in your hand.")
			s.play(audio.CuePickup)
		case render.SpriteNote:
			s.player.Notes++
			s.note(noteTexts[(s.player.Notes-1)%len(noteTexts)])
			s.play(audio.CueNote)
		case render.SpriteLight:
			s.player.Fuel += parameter.FuelPickup
			if s.player.Fuel > parameter.FuelMax {
				s.player.Fuel = parameter.FuelMax
			}
			s.note("The lantern drinks fresh oil.")
			s.play(audio.CuePickup)
		}
	}
}

func (s *Session) advanceHazards(dt float64) {
	rng := s.hazardRng()
	for _, h := range s.hazards {
		if h.Update(s.grid, s.player, dt, rng) {
			s.player.Shake()
			s.player.Fuel -= parameter.FuelDrainHit
			s.hitsTaken = true
			s.play(audio.CueHazardHit)
			if s.player.Fuel <= 0 {
				s.player.Fuel = 0
				s.outcome = OutcomeLostSlain
				return
			}
		}
	}
}

func (s *Session) checkFuel() {
	if s.outcome != OutcomeOpen {
		return
	}
	if s.player.Fuel <= 0 {
		s.outcome = OutcomeLostFuel
		return
	}

	if s.player.LowFuel() && !s.lowFuelOn {
		s.lowFuelOn = true
		s.note("The flame gutters. Find oil.")
		s.play(audio.CueLowFuel)
	} else if !s.player.LowFuel() && s.lowFuelOn {
		s.lowFuelOn = false
		if s.cfg.Audio != nil {
			s.cfg.Audio.StopLowFuel()
		}
	}
}

// checkExit resolves the win condition: standing on the exit cell with
// every spawned key in hand. A keyless approach bumps the locked door
// once per interact press.
func (s *Session) checkExit() {
	if s.outcome != OutcomeOpen || s.maze.Exit == nil {
		return
	}

	keysOk := s.player.Keys >= s.keysRequired()

	if s.door != nil && !s.door.Unlocked && keysOk {
		ex, ey := s.grid.GridToWorld(s.maze.Exit.Col, s.maze.Exit.Row)
		if vmath.Magnitude(ex-s.player.X, ey-s.player.Y) <= parameter.InteractRange {
			s.door.Unlocked = true
			s.note("The key turns. The way is open.")
			s.play(audio.CueExit)
		}
	}

	col, row := s.grid.WorldToGrid(s.player.X, s.player.Y)
	if col == s.maze.Exit.Col && row == s.maze.Exit.Row {
		if keysOk {
			s.outcome = OutcomeWon
			s.play(audio.CueExit)
		} else if s.interact {
			s.note("The door is locked. It wants a key.")
			s.play(audio.CueDoorLocked)
		}
	}
}

// keysRequired counts the key items this maze actually spawned
func (s *Session) keysRequired() int {
	n := 0
	for _, it := range s.items {
		if it.Kind == render.SpriteKey {
			n++
		}
	}
	return n
}

// sprites assembles the visible sprite list for this frame: items
// first, hazards on top of the same list
func (s *Session) sprites() []render.Sprite {
	out := make([]render.Sprite, 0, len(s.items)+len(s.hazards))
	for _, it := range s.items {
		if sp, ok := it.Sprite(); ok {
			out = append(out, sp)
		}
	}
	for _, h := range s.hazards {
		out = append(out, render.Sprite{X: h.X, Y: h.Y, Kind: render.SpriteHazard})
	}
	return out
}

// hazardRng derives a per-session stream for hazard wandering. Stored
// lazily so hazard behavior stays deterministic for a seed.
func (s *Session) hazardRng() *vmath.FastRand {
	if s.wanderRng == nil {
		s.wanderRng = vmath.NewFastRand(s.maze.Seed ^ (seedMix >> 1))
	}
	return s.wanderRng
}

func (s *Session) resetIntents() {
	s.forward = 0
	s.strafe = 0
	s.turn = 0
	s.interact = false
}

func (s *Session) note(text string) {
	s.message = text
	s.messageFor = 3.5
}

func (s *Session) play(c audio.Cue) {
	if s.cfg.Audio != nil {
		s.cfg.Audio.Play(c)
	}
}

// Outcome reports the resolution state; OutcomeOpen while running
func (s *Session) Outcome() Outcome { return s.outcome }

// Paused reports whether the simulation is held
func (s *Session) Paused() bool { return s.paused }

// Player exposes the player for HUD rendering
func (s *Session) Player() *sim.Player { return s.player }

// Grid exposes the wall layout for minimap rendering
func (s *Session) Grid() *maze.Grid { return s.grid }

// Maze exposes generation metadata
func (s *Session) Maze() *maze.Maze { return s.maze }

// Message returns the transient HUD line, empty once expired
func (s *Session) Message() string {
	if s.messageFor <= 0 {
		return ""
	}
	return s.message
}

// Result summarizes the finished run for progression accounting
func (s *Session) Result() progress.RunResult {
	return progress.RunResult{
		Won:       s.outcome == OutcomeWon,
		Artifacts: s.player.Artifacts,
		Notes:     s.player.Notes,
		HitsTaken: s.hitsTaken,
		FullClear: s.player.Artifacts >= parameter.ArtifactCount && s.player.Notes >= parameter.NoteCount,
		Duration:  time.Duration(s.elapsed * float64(time.Second)),
	}
}

var noteTexts = []string{
	"\"The walls move when the flame is low.\" The rest is illegible.",
	"A map fragment. Someone circled the middle of an edge, twice.",
}
