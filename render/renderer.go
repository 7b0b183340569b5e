package render

import (
	"math"

	"github.com/lixenwraith/lantern/maze"
	"github.com/lixenwraith/lantern/parameter"
	"github.com/lixenwraith/lantern/raycast"
	"github.com/lixenwraith/lantern/vmath"
)

// View is the camera for one frame: world position plus the camera
// angle, which is the entity facing with any transient shake applied.
type View struct {
	X, Y  float64
	Angle float64
}

// Renderer owns the per-column depth buffer and the candle light.
// One instance per session; not safe for concurrent use, matching the
// single-writer frame loop.
type Renderer struct {
	rayCount int
	depth    []float64
	candle   *Candle
}

func NewRenderer(rayCount int, rng *vmath.FastRand) *Renderer {
	if rayCount <= 0 {
		rayCount = parameter.RayCount
	}
	return &Renderer{
		rayCount: rayCount,
		depth:    make([]float64, rayCount),
		candle:   NewCandle(rng),
	}
}

func (r *Renderer) RayCount() int   { return r.rayCount }
func (r *Renderer) Candle() *Candle { return r.candle }

// ColumnDepth returns the corrected wall distance cached for a column
// during the last wall pass
func (r *Renderer) ColumnDepth(i int) float64 {
	if i < 0 || i >= len(r.depth) {
		return math.Inf(1)
	}
	return r.depth[i]
}

// Draw renders one full frame: background, wall strips, then sprites.
// elapsed is total session time (drives the breathing effect), dt the
// clamped frame delta (drives flicker evolution).
func (r *Renderer) Draw(f *Frame, g *maze.Grid, view View, sprites []Sprite, elapsed, dt float64) {
	r.candle.Advance(dt)
	r.drawBackground(f)
	r.drawWalls(f, g, view, elapsed)
	r.drawSprites(f, g, view, sprites)
}

// drawBackground paints the ceiling and a floor gradient that
// brightens toward the viewer
func (r *Renderer) drawBackground(f *Frame) {
	half := f.height / 2
	for y := 0; y < half; y++ {
		f.FillRow(y, ColorCeiling)
	}
	for y := half; y < f.height; y++ {
		t := float64(y-half) / float64(f.height-half)
		f.FillRow(y, ColorFloor.Scale(parameter.MinBrightness+t*0.5))
	}
}

// drawWalls marches one ray per column and paints perspective-correct
// strips. Corrected distances are cached per column as the occlusion
// key for the sprite pass.
func (r *Renderer) drawWalls(f *Frame, g *maze.Grid, view View, elapsed float64) {
	flicker := r.candle.Flicker()

	for i := 0; i < r.rayCount; i++ {
		rayAngle := view.Angle - parameter.FOV/2 + (float64(i)+0.5)*parameter.FOV/float64(r.rayCount)

		hit := raycast.Cast(g, view.X, view.Y, rayAngle, parameter.MaxDepth)
		if !hit.Wall {
			// Miss renders as background fog, and sprites out to max
			// depth stay visible in this column
			r.depth[i] = parameter.MaxDepth
			continue
		}

		// Fisheye correction: project the hit onto the view axis
		corrected := hit.Distance * math.Cos(rayAngle-view.Angle)
		r.depth[i] = corrected

		h := int(float64(f.height) * g.CellSize() * parameter.WallHeightScale / corrected)
		if h > f.height*4 {
			h = f.height * 4
		}

		hitCol, hitRow := g.WorldToGrid(hit.X, hit.Y)
		lightDist := r.candle.DistanceTo(hit.X, hit.Y)
		warp := WarpOffset(hitCol, hitRow, elapsed, lightDist)

		y0 := (f.height-h)/2 + int(warp)
		y1 := y0 + h

		base := ColorWallLit
		if hit.Side == raycast.SideHorizontal {
			base = ColorWallDark
		}
		shaded := base.Scale(r.candle.Brightness(lightDist) * fogFactor(corrected) * flicker)

		x0 := i * f.width / r.rayCount
		x1 := (i + 1) * f.width / r.rayCount
		for x := x0; x < x1; x++ {
			f.FillColumn(x, y0, y1, shaded)
		}
	}
}

// fogFactor fades surfaces linearly toward the far plane
func fogFactor(dist float64) float64 {
	return vmath.Clamp(1.0-dist/parameter.MaxDepth, 0, 1)
}
