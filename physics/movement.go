// Package physics integrates intended displacements against the maze
// grid. Movement is resolved per axis so entities slide along walls
// instead of sticking to them.
package physics

import (
	"github.com/lixenwraith/lantern/maze"
)

// Probe offsets spanning the collision radius on the axis
// perpendicular to the move
var probeOffsets = [3]float64{-1, 0, 1}

// Move converts an intended displacement (already scaled by speed and
// elapsed time) into an actual displacement. Each axis is tested
// independently; when both raw axes are blocked but the intent is
// diagonal, each axis is retried alone so corners cannot trap the
// entity.
func Move(g *maze.Grid, x, y, dx, dy, radius float64) (nx, ny float64) {
	nx, ny = x, y

	// Primary tests run against the full candidate position, so a
	// diagonal intent grazing a corner is rejected on both axes
	movedX := false
	if dx != 0 && clearX(g, x+dx, y+dy, sign(dx), radius) {
		nx = x + dx
		movedX = true
	}
	movedY := false
	if dy != 0 && clearY(g, nx, y+dy, sign(dy), radius) {
		ny = y + dy
		movedY = true
	}

	// Slide fallback: retry each axis alone from the original position.
	// A blocked diagonal often still has an edge-aligned path.
	if !movedX && !movedY && dx != 0 && dy != 0 {
		if clearX(g, x+dx, y, sign(dx), radius) {
			nx = x + dx
		} else if clearY(g, x, y+dy, sign(dy), radius) {
			ny = y + dy
		}
	}

	return nx, ny
}

// clearX tests the leading vertical edge of the entity at candidate
// position (x, y), with probes spanning the radius along Y
func clearX(g *maze.Grid, x, y, dir, radius float64) bool {
	for _, t := range probeOffsets {
		if g.IsWallWorld(x+dir*radius, y+t*radius) {
			return false
		}
	}
	return true
}

// clearY tests the leading horizontal edge of the entity at candidate
// position (x, y), with probes spanning the radius along X
func clearY(g *maze.Grid, x, y, dir, radius float64) bool {
	for _, t := range probeOffsets {
		if g.IsWallWorld(x+t*radius, y+dir*radius) {
			return false
		}
	}
	return true
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
