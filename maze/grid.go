package maze

import "math"

// Cell types
type Cell uint8

const (
	Wall Cell = iota
	Path
)

// GridPoint is a cell coordinate (column, row)
type GridPoint struct {
	Col, Row int
}

// Grid is the authoritative wall layout for one maze instance.
// It is written once by Generate and read-only afterwards; the ray
// caster and the movement integrator never mutate it.
type Grid struct {
	width    int
	height   int
	cellSize float64
	cells    []Cell
}

func newGrid(width, height int, cellSize float64) *Grid {
	return &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cells:    make([]Cell, width*height),
	}
}

func (g *Grid) Width() int        { return g.width }
func (g *Grid) Height() int       { return g.height }
func (g *Grid) CellSize() float64 { return g.cellSize }

// CellAt returns the cell at (col, row).
// Out-of-bounds reads return Wall: the world is closed, so traversal
// and collision code need no separate bounds checks.
func (g *Grid) CellAt(col, row int) Cell {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return Wall
	}
	return g.cells[row*g.width+col]
}

// IsWall reports whether the cell at (col, row) is solid
func (g *Grid) IsWall(col, row int) bool {
	return g.CellAt(col, row) == Wall
}

// IsWallWorld reports whether the world-space point (x, y) lies in a
// solid cell
func (g *Grid) IsWallWorld(x, y float64) bool {
	col, row := g.WorldToGrid(x, y)
	return g.CellAt(col, row) == Wall
}

// WorldToGrid converts world coordinates to a cell coordinate by floor
// division with the cell size
func (g *Grid) WorldToGrid(x, y float64) (col, row int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}

// GridToWorld returns the world-space center of cell (col, row)
func (g *Grid) GridToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * g.cellSize, (float64(row) + 0.5) * g.cellSize
}

// FromStrings builds a grid from a rune map where '#' is Wall and any
// other rune is Path. Rows must be equal length. Used by tests and
// debug tooling; gameplay grids come from Generate.
func FromStrings(rows []string, cellSize float64) *Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	g := newGrid(width, height, cellSize)
	for row, line := range rows {
		for col, r := range line {
			if r != '#' {
				g.set(col, row, Path)
			}
		}
	}
	return g
}

func (g *Grid) set(col, row int, c Cell) {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return
	}
	g.cells[row*g.width+col] = c
}

// Cells returns a copy of the raw cell array, row-major.
// Used by tests and the minimap; mutation of the copy has no effect.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
