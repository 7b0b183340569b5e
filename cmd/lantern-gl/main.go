// Graphical frontend. Blits the raster to the window every frame and
// overlays a minimap in the corner.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/lantern/audio"
	"github.com/lixenwraith/lantern/game"
	"github.com/lixenwraith/lantern/input"
	"github.com/lixenwraith/lantern/maze"
	"github.com/lixenwraith/lantern/progress"
	"github.com/lixenwraith/lantern/render"
	"github.com/lixenwraith/lantern/status"
)

const (
	viewWidth  = 320
	viewHeight = 180
)

var holdBindings = []struct {
	key    ebiten.Key
	intent input.IntentType
}{
	{ebiten.KeyW, input.IntentMoveForward},
	{ebiten.KeyUp, input.IntentMoveForward},
	{ebiten.KeyS, input.IntentMoveBack},
	{ebiten.KeyDown, input.IntentMoveBack},
	{ebiten.KeyA, input.IntentStrafeLeft},
	{ebiten.KeyD, input.IntentStrafeRight},
	{ebiten.KeyLeft, input.IntentTurnLeft},
	{ebiten.KeyRight, input.IntentTurnRight},
}

// Game adapts the session to the ebiten.Game interface
type Game struct {
	session  *game.Session
	frame    *render.Frame
	engine   *audio.Engine
	counters *status.Counters
	record   *progress.Record

	view    *ebiten.Image
	minimap *ebiten.Image
	mapBuf  []byte

	seed   uint64
	rays   int
	debug  bool
	saved  bool
	lastDt float64
}

func newGame(seed uint64, rays int, debug bool) *Game {
	record, err := progress.Load(progress.DefaultPath())
	if err != nil {
		log.Printf("Progress load failed, starting fresh: %v", err)
		record = progress.New()
	}

	engine := audio.NewEngine()
	if err := engine.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}

	g := &Game{
		frame:    render.NewFrame(viewWidth, viewHeight),
		engine:   engine,
		counters: &status.Counters{},
		record:   record,
		view:     ebiten.NewImage(viewWidth, viewHeight),
		seed:     seed,
		rays:     rays,
		debug:    debug,
	}
	g.newRun()
	return g
}

func (g *Game) newRun() {
	g.session = game.NewSession(game.Config{
		Seed:     g.seed,
		RayCount: g.rays,
		Record:   g.record,
		Audio:    g.engine,
		Counters: g.counters,
	})
	g.saved = false

	grid := g.session.Grid()
	g.minimap = ebiten.NewImage(grid.Width(), grid.Height())
	g.mapBuf = make([]byte, grid.Width()*grid.Height()*4)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.engine.Cleanup()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.Apply(input.Make(input.IntentPause))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.session.Apply(input.Make(input.IntentToggleMute))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.session.Outcome() != game.OutcomeOpen {
		g.newRun()
	}

	// Held keys feed continuous motion, one intent per tick
	for _, b := range holdBindings {
		if ebiten.IsKeyPressed(b.key) {
			g.session.Apply(input.Make(b.intent))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Apply(input.Make(input.IntentInteract))
	}

	g.lastDt = g.session.Advance(time.Now())
	g.resolveRun()
	return nil
}

// resolveRun saves progression once when the run ends
func (g *Game) resolveRun() {
	out := g.session.Outcome()
	if out == game.OutcomeOpen || out == game.OutcomeQuit || g.saved {
		return
	}
	g.record.ApplyRun(g.session.Result())
	if err := g.record.Save(progress.DefaultPath()); err != nil {
		log.Printf("Progress save failed: %v", err)
	}
	g.saved = true
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(g.frame, g.lastDt)
	g.view.WritePixels(g.frame.Pix())
	screen.DrawImage(g.view, nil)

	g.drawMinimap(screen)
	g.drawHUD(screen)
}

// drawMinimap paints one pixel per maze cell in the top-right corner
func (g *Game) drawMinimap(screen *ebiten.Image) {
	grid := g.session.Grid()
	cells := grid.Cells()

	for i, c := range cells {
		o := i * 4
		if c == maze.Wall {
			g.mapBuf[o], g.mapBuf[o+1], g.mapBuf[o+2], g.mapBuf[o+3] = 60, 54, 48, 200
		} else {
			g.mapBuf[o], g.mapBuf[o+1], g.mapBuf[o+2], g.mapBuf[o+3] = 16, 14, 18, 200
		}
	}

	if m := g.session.Maze(); m.Exit != nil {
		o := (m.Exit.Row*grid.Width() + m.Exit.Col) * 4
		g.mapBuf[o], g.mapBuf[o+1], g.mapBuf[o+2], g.mapBuf[o+3] = 80, 220, 120, 255
	}

	p := g.session.Player()
	col, row := grid.WorldToGrid(p.X, p.Y)
	if col >= 0 && col < grid.Width() && row >= 0 && row < grid.Height() {
		o := (row*grid.Width() + col) * 4
		g.mapBuf[o], g.mapBuf[o+1], g.mapBuf[o+2], g.mapBuf[o+3] = 255, 255, 255, 255
	}

	g.minimap.WritePixels(g.mapBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(viewWidth-grid.Width()-4), 4)
	screen.DrawImage(g.minimap, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.session.Player()

	line := fmt.Sprintf("fuel %3.0f  keys %d  artifacts %d  notes %d",
		p.Fuel, p.Keys, p.Artifacts, p.Notes)
	if g.session.Paused() {
		line += "  [paused]"
	}
	if msg := g.session.Message(); msg != "" {
		line += "\n" + msg
	}

	switch g.session.Outcome() {
	case game.OutcomeWon:
		line += "\nYou step into daylight. [R] new maze  [Q] quit"
	case game.OutcomeLostFuel:
		line += "\nThe flame dies, and the dark closes in. [R] retry  [Q] quit"
	case game.OutcomeLostSlain:
		line += "\nSomething finds you in the dark. [R] retry  [Q] quit"
	}

	if g.debug {
		line += "\n" + g.counters.Snapshot().DebugLine()
	}
	ebitenutil.DebugPrint(screen, line)
}

// Layout returns the fixed logical resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewWidth, viewHeight
}

func main() {
	seed := flag.Uint64("seed", 0, "maze seed (0 = time-based)")
	rays := flag.Int("rays", viewWidth, "ray count")
	scale := flag.Int("scale", 3, "window scale factor")
	debug := flag.Bool("debug", false, "show the runtime counter line")
	flag.Parse()

	ebiten.SetWindowTitle("lantern")
	ebiten.SetWindowSize(viewWidth*(*scale), viewHeight*(*scale))
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(newGame(*seed, *rays, *debug)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
