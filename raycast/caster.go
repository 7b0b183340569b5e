// Package raycast marches rays through the maze grid with an
// Amanatides-Woo DDA: rays advance to successive grid-line crossings
// instead of sampling at fixed intervals, so every traversed cell is
// visited exactly once and termination is bounded.
package raycast

import (
	"math"

	"github.com/lixenwraith/lantern/maze"
)

// Side tags which wall face a ray crossed, for differential shading
const (
	SideVertical   = 0 // east/west facing face (vertical grid line)
	SideHorizontal = 1 // north/south facing face (horizontal grid line)
)

// Hit is the ephemeral per-ray result. Not persisted; recomputed every
// frame per ray.
type Hit struct {
	Distance float64 // world units from origin to the crossed boundary
	X, Y     float64 // world-space hit point
	Side     int     // SideVertical or SideHorizontal
	Wall     bool    // false = max depth reached without a wall
}

// Cast marches from world point (ox, oy) at the given angle until it
// enters a solid cell or exceeds maxDepth. A miss at max depth is not
// an error; the renderer paints it as fog.
func Cast(g *maze.Grid, ox, oy, angle, maxDepth float64) Hit {
	cellSize := g.CellSize()

	dirX := math.Cos(angle)
	dirY := math.Sin(angle)

	// Grid-space origin
	gx := ox / cellSize
	gy := oy / cellSize
	col := int(math.Floor(gx))
	row := int(math.Floor(gy))

	// Per-axis world distance between successive grid-line crossings.
	// A zero component never crosses its axis.
	deltaX := math.Inf(1)
	if dirX != 0 {
		deltaX = cellSize / math.Abs(dirX)
	}
	deltaY := math.Inf(1)
	if dirY != 0 {
		deltaY = cellSize / math.Abs(dirY)
	}

	var stepCol, stepRow int
	var sideX, sideY float64 // accumulated distance to the next crossing

	if dirX < 0 {
		stepCol = -1
		sideX = (gx - float64(col)) * deltaX
	} else {
		stepCol = 1
		sideX = (float64(col) + 1 - gx) * deltaX
	}
	if dirY < 0 {
		stepRow = -1
		sideY = (gy - float64(row)) * deltaY
	} else {
		stepRow = 1
		sideY = (float64(row) + 1 - gy) * deltaY
	}

	// An axis-aligned ray on a grid line would otherwise produce 0*Inf
	if dirX == 0 {
		sideX = math.Inf(1)
	}
	if dirY == 0 {
		sideY = math.Inf(1)
	}

	dist := 0.0
	side := SideVertical

	for {
		if sideX < sideY {
			dist = sideX
			sideX += deltaX
			col += stepCol
			side = SideVertical
		} else {
			dist = sideY
			sideY += deltaY
			row += stepRow
			side = SideHorizontal
		}

		if dist > maxDepth {
			return Hit{
				Distance: maxDepth,
				X:        ox + dirX*maxDepth,
				Y:        oy + dirY*maxDepth,
				Side:     side,
				Wall:     false,
			}
		}

		// Out-of-bounds reads return Wall, so the march cannot escape
		// the grid
		if g.CellAt(col, row) == maze.Wall {
			return Hit{
				Distance: dist,
				X:        ox + dirX*dist,
				Y:        oy + dirY*dist,
				Side:     side,
				Wall:     true,
			}
		}
	}
}

// LineOfSight reports whether the straight segment between two world
// points is free of walls. Used by hazard awareness and as the exact
// occlusion backstop for sprites.
func LineOfSight(g *maze.Grid, x1, y1, x2, y2 float64) bool {
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return true
	}
	h := Cast(g, x1, y1, math.Atan2(dy, dx), dist)
	return !h.Wall || h.Distance >= dist
}
