package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/lantern/maze"
	"github.com/lixenwraith/lantern/parameter"
	"github.com/lixenwraith/lantern/raycast"
	"github.com/lixenwraith/lantern/vmath"
)

// SpriteKind tags what a billboard represents
type SpriteKind uint8

const (
	SpriteKey SpriteKind = iota
	SpriteArtifact
	SpriteNote
	SpriteLight
	SpriteHazard
	SpriteDoor
)

// Sprite is the renderer-facing view of a world object. Produced by
// the simulation each frame; only visible sprites are submitted.
type Sprite struct {
	X, Y  float64
	Kind  SpriteKind
	Color *RGB // optional override of the kind palette
}

// spriteProjection is an accepted sprite with its screen-space
// placement
type spriteProjection struct {
	sprite    Sprite
	dist      float64 // true distance, used for paint ordering and size
	corrected float64 // perpendicular distance, the occlusion key
	rel       float64 // angle offset from view center
}

// projectSprites culls and projects the sprite list. Two occlusion
// tests run per sprite: the cached per-column depth buffer is the
// cheap check, and an independent ray toward the sprite's exact angle
// is the exact backstop for column-boundary edge cases. Both are
// intentional; neither alone covers the other's failure mode.
func (r *Renderer) projectSprites(g *maze.Grid, view View, sprites []Sprite) []spriteProjection {
	out := make([]spriteProjection, 0, len(sprites))

	for _, s := range sprites {
		dx, dy := s.X-view.X, s.Y-view.Y
		dist := math.Hypot(dx, dy)

		// Degenerate distance would blow up the projected size
		if dist < parameter.SpriteEpsilon {
			continue
		}

		rel := vmath.NormalizeAngle(math.Atan2(dy, dx) - view.Angle)
		if math.Abs(rel) > parameter.FOV/2+parameter.SpriteFOVMargin {
			continue
		}

		corrected := dist * math.Cos(rel)
		if corrected <= 0 {
			continue
		}

		col := int((rel + parameter.FOV/2) / parameter.FOV * float64(r.rayCount))
		if col < 0 {
			col = 0
		}
		if col >= r.rayCount {
			col = r.rayCount - 1
		}
		if r.depth[col]+parameter.OcclusionTolerance < corrected {
			continue
		}

		if !raycast.LineOfSight(g, view.X, view.Y, s.X, s.Y) {
			continue
		}

		out = append(out, spriteProjection{sprite: s, dist: dist, corrected: corrected, rel: rel})
	}

	// Back-to-front so nearer sprites overdraw farther ones
	sort.Slice(out, func(i, j int) bool { return out[i].dist > out[j].dist })
	return out
}

func (r *Renderer) drawSprites(f *Frame, g *maze.Grid, view View, sprites []Sprite) {
	for _, p := range r.projectSprites(g, view, sprites) {
		r.drawBillboard(f, g, p)
	}
}

// drawBillboard paints one sprite as a distance-scaled diamond
func (r *Renderer) drawBillboard(f *Frame, g *maze.Grid, p spriteProjection) {
	size := int(float64(f.height) * g.CellSize() * parameter.SpriteHeightScale / p.corrected)
	if size < 2 {
		size = 2
	}
	if size > f.height {
		size = f.height
	}

	color := kindColor(p.sprite.Kind)
	if p.sprite.Color != nil {
		color = *p.sprite.Color
	}

	lightDist := r.candle.DistanceTo(p.sprite.X, p.sprite.Y)
	b := r.candle.Brightness(lightDist) * fogFactor(p.corrected) * r.candle.Flicker()
	shaded := color.Scale(b)

	centerX := int((p.rel + parameter.FOV/2) / parameter.FOV * float64(f.width))
	centerY := f.height/2 + size/6 // rest slightly below the horizon

	half := size / 2
	for ox := -half; ox <= half; ox++ {
		span := half - abs(ox)
		f.FillColumn(centerX+ox, centerY-span, centerY+span+1, shaded)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
