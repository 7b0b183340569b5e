package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/lantern/maze"
)

func TestMoveFreeSpace(t *testing.T) {
	g := maze.FromStrings([]string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	}, 1.0)

	nx, ny := Move(g, 2.5, 2.5, 0.2, -0.2, 0.3)
	if math.Abs(nx-2.7) > 1e-9 || math.Abs(ny-2.3) > 1e-9 {
		t.Errorf("Expected (2.7, 2.3), got (%v, %v)", nx, ny)
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	g := maze.FromStrings([]string{
		"#####",
		"#...#",
		"#####",
	}, 1.0)

	// Pushing north into the wall row must not move the entity
	nx, ny := Move(g, 2.5, 1.5, 0, -0.5, 0.3)
	if nx != 2.5 || ny != 1.5 {
		t.Errorf("Expected blocked move to stay at (2.5, 1.5), got (%v, %v)", nx, ny)
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	g := maze.FromStrings([]string{
		"#####",
		"#...#",
		"#####",
	}, 1.0)

	// Diagonal intent against the north wall: X advances, Y is dropped
	nx, ny := Move(g, 1.5, 1.5, 0.2, -0.5, 0.15)
	if math.Abs(nx-1.7) > 1e-9 {
		t.Errorf("Expected X to advance to 1.7, got %v", nx)
	}
	if ny != 1.5 {
		t.Errorf("Expected Y to stay at 1.5, got %v", ny)
	}
}

func TestMoveAxisSlideFallback(t *testing.T) {
	// Horizontal corridor with solid rows above and below. A diagonal
	// intent whose candidate grazes the south wall is blocked on both
	// raw axes, but X alone is clear; the integrator must take it.
	g := maze.FromStrings([]string{
		"#####",
		"#..##",
		"#####",
	}, 1.0)

	nx, ny := Move(g, 1.5, 1.5, 0.3, 0.3, 0.3)
	if math.Abs(nx-1.8) > 1e-9 {
		t.Errorf("Expected slide to advance X to 1.8, got %v", nx)
	}
	if ny != 1.5 {
		t.Errorf("Expected Y unchanged at 1.5, got %v", ny)
	}
	if nx == 1.5 && ny == 1.5 {
		t.Error("Entity left fully stationary despite a clear axis")
	}
}

func TestMoveCornerNotTrapped(t *testing.T) {
	g := maze.FromStrings([]string{
		"#####",
		"#..##",
		"#.###",
		"#####",
	}, 1.0)

	// Wedged into the corner cell, pushing further into it: the south
	// arm is open, so the Y component must survive
	nx, ny := Move(g, 1.5, 1.5, 0.4, 0.3, 0.2)
	if nx != 1.5 {
		t.Errorf("Expected X blocked at 1.5, got %v", nx)
	}
	if math.Abs(ny-1.8) > 1e-9 {
		t.Errorf("Expected Y to advance to 1.8, got %v", ny)
	}
}

func TestMoveRadiusKeepsClearance(t *testing.T) {
	g := maze.FromStrings([]string{
		"#####",
		"#...#",
		"#####",
	}, 1.0)

	// A wide entity cannot sink its edge into the wall even when its
	// center would remain in an open cell
	nx, _ := Move(g, 3.5, 1.5, 0.4, 0, 0.3)
	if nx != 3.5 {
		t.Errorf("Expected wide entity blocked at 3.5, got %v", nx)
	}
}
