// Terminal frontend. Renders the raster into colored shade runes,
// one terminal cell per pixel, with a two-row HUD at the bottom.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lantern/audio"
	"github.com/lixenwraith/lantern/game"
	"github.com/lixenwraith/lantern/input"
	"github.com/lixenwraith/lantern/parameter"
	"github.com/lixenwraith/lantern/progress"
	"github.com/lixenwraith/lantern/render"
	"github.com/lixenwraith/lantern/status"
)

// shadeRamp maps luminance to a rune, darkest first
var shadeRamp = []rune(" .:-=+*#%@")

const hudRows = 2

type App struct {
	screen   tcell.Screen
	session  *game.Session
	frame    *render.Frame
	engine   *audio.Engine
	counters *status.Counters
	record   *progress.Record

	seed     uint64
	rays     int
	debug    bool
	savePath string
	saved    bool
}

func main() {
	seed := flag.Uint64("seed", 0, "maze seed (0 = time-based)")
	rays := flag.Int("rays", 0, "ray count (0 = default)")
	debug := flag.Bool("debug", false, "show the runtime counter line")
	mute := flag.Bool("mute", false, "start muted")
	flag.Parse()

	record, err := progress.Load(progress.DefaultPath())
	if err != nil {
		log.Printf("Progress load failed, starting fresh: %v", err)
		record = progress.New()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	engine := audio.NewEngine()
	if err := engine.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		log.Printf("Audio initialization failed: %v", err)
	}
	if *mute {
		engine.ToggleMute()
	}

	app := &App{
		screen:   screen,
		engine:   engine,
		counters: &status.Counters{},
		record:   record,
		seed:     *seed,
		rays:     *rays,
		debug:    *debug,
		savePath: progress.DefaultPath(),
	}

	defer app.cleanup()
	app.newRun()
	app.run()
}

// cleanup restores the terminal even when the loop panics
func (a *App) cleanup() {
	if r := recover(); r != nil {
		a.screen.Fini()
		a.engine.Cleanup()
		panic(r)
	}
	a.screen.Fini()
	a.engine.Cleanup()
}

func (a *App) newRun() {
	a.session = game.NewSession(game.Config{
		Seed:     a.seed,
		RayCount: a.rays,
		Record:   a.record,
		Audio:    a.engine,
		Counters: a.counters,
	})
	a.saved = false
	a.resize()
}

func (a *App) resize() {
	w, h := a.screen.Size()
	if h <= hudRows {
		h = hudRows + 1
	}
	if a.frame == nil {
		a.frame = render.NewFrame(w, h-hudRows)
		return
	}
	a.frame.Resize(w, h-hudRows)
}

func (a *App) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.session.Step(time.Now(), a.frame)
			a.resolveRun()
			a.draw()

			if a.session.Outcome() == game.OutcomeQuit {
				return
			}
		}
	}
}

// resolveRun saves progression once when the run ends
func (a *App) resolveRun() {
	out := a.session.Outcome()
	if out == game.OutcomeOpen || out == game.OutcomeQuit || a.saved {
		return
	}
	a.record.ApplyRun(a.session.Result())
	if err := a.record.Save(a.savePath); err != nil {
		log.Printf("Progress save failed: %v", err)
	}
	a.saved = true
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			a.session.Apply(input.Make(input.IntentQuit))
			return false
		}
		for _, in := range translateKey(ev) {
			if in.Type == input.IntentQuit {
				// On the end screen any quit key leaves immediately
				a.session.Apply(in)
				return false
			}
			a.session.Apply(in)
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && a.session.Outcome() != game.OutcomeOpen {
			a.newRun()
		}

	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

// translateKey maps one terminal key event to intents. Terminal input
// is impulse-based: held keys arrive as repeats, each repeat applies
// one frame of motion.
func translateKey(ev *tcell.EventKey) []input.Intent {
	switch ev.Key() {
	case tcell.KeyEscape:
		return []input.Intent{input.Make(input.IntentPause)}
	case tcell.KeyUp:
		return []input.Intent{input.Make(input.IntentMoveForward)}
	case tcell.KeyDown:
		return []input.Intent{input.Make(input.IntentMoveBack)}
	case tcell.KeyLeft:
		return []input.Intent{input.Make(input.IntentTurnLeft)}
	case tcell.KeyRight:
		return []input.Intent{input.Make(input.IntentTurnRight)}
	}

	if ev.Key() != tcell.KeyRune {
		return nil
	}
	switch ev.Rune() {
	case 'q':
		return []input.Intent{input.Make(input.IntentQuit)}
	case 'p':
		return []input.Intent{input.Make(input.IntentPause)}
	case 'm':
		return []input.Intent{input.Make(input.IntentToggleMute)}
	case 'w', 'k':
		return []input.Intent{input.Make(input.IntentMoveForward)}
	case 's', 'j':
		return []input.Intent{input.Make(input.IntentMoveBack)}
	case 'a':
		return []input.Intent{input.Make(input.IntentStrafeLeft)}
	case 'd':
		return []input.Intent{input.Make(input.IntentStrafeRight)}
	case 'h':
		return []input.Intent{input.Make(input.IntentTurnLeft)}
	case 'l':
		return []input.Intent{input.Make(input.IntentTurnRight)}
	case 'e', ' ':
		return []input.Intent{input.Make(input.IntentInteract)}
	}
	return nil
}

func (a *App) draw() {
	a.blitFrame()
	a.drawHUD()
	a.drawOverlay()
	a.screen.Show()
}

// blitFrame presents each raster pixel as a colored shade rune
func (a *App) blitFrame() {
	w, h := a.frame.Width(), a.frame.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := a.frame.At(x, y)

			// Rec. 601 luma, cheap integer form
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
			r := shadeRamp[lum*len(shadeRamp)/256]

			style := tcell.StyleDefault.Foreground(
				tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			a.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (a *App) drawHUD() {
	p := a.session.Player()
	w, _ := a.screen.Size()
	row := a.frame.Height()

	fuelStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	if p.LowFuel() {
		fuelStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}

	line := fmt.Sprintf("fuel %3.0f  keys %d  artifacts %d  notes %d",
		p.Fuel, p.Keys, p.Artifacts, p.Notes)
	if a.session.Paused() {
		line += "  [paused]"
	}
	putString(a.screen, 0, row, line, fuelStyle)
	clearTo(a.screen, len(line), w, row)

	second := a.session.Message()
	if a.debug && second == "" {
		second = a.counters.Snapshot().DebugLine()
	}
	putString(a.screen, 0, row+1, second, tcell.StyleDefault.Foreground(tcell.ColorGray))
	clearTo(a.screen, len(second), w, row+1)
}

// drawOverlay centers the end-of-run banner
func (a *App) drawOverlay() {
	var text string
	switch a.session.Outcome() {
	case game.OutcomeWon:
		text = " You step into daylight. [r] new maze  [q] quit "
	case game.OutcomeLostFuel:
		text = " The flame dies, and the dark closes in. [r] retry  [q] quit "
	case game.OutcomeLostSlain:
		text = " Something finds you in the dark. [r] retry  [q] quit "
	default:
		return
	}

	w, h := a.screen.Size()
	x := (w - len(text)) / 2
	if x < 0 {
		x = 0
	}
	putString(a.screen, x, h/2, text,
		tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true))
}

func putString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func clearTo(s tcell.Screen, from, to, y int) {
	for x := from; x < to; x++ {
		s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
