package sim

import (
	"github.com/lixenwraith/lantern/maze"
	"github.com/lixenwraith/lantern/parameter"
	"github.com/lixenwraith/lantern/render"
	"github.com/lixenwraith/lantern/vmath"
)

// Item is a collectible or interactive world object
type Item struct {
	X, Y      float64
	Kind      render.SpriteKind
	Collected bool
	Unlocked  bool // doors only
}

// Sprite converts the item to its renderer view. The second return is
// false when the item should not be drawn this frame.
func (it *Item) Sprite() (render.Sprite, bool) {
	if it.Collected {
		return render.Sprite{}, false
	}
	if it.Kind == render.SpriteDoor && it.Unlocked {
		return render.Sprite{}, false
	}
	return render.Sprite{X: it.X, Y: it.Y, Kind: it.Kind}, true
}

// PlaceItems scatters the run's items over open cells, deterministic
// for the maze seed. The exit door sits on the exit cell itself; keys,
// artifacts, notes and light refills go to shuffled interior cells
// away from spawn.
func PlaceItems(m *maze.Maze, rng *vmath.FastRand) []*Item {
	g := m.Grid
	spawnX, spawnY := g.GridToWorld(m.Spawn.Col, m.Spawn.Row)

	open := make([]maze.GridPoint, 0, g.Width()*g.Height()/2)
	for row := 1; row < g.Height()-1; row++ {
		for col := 1; col < g.Width()-1; col++ {
			if g.CellAt(col, row) != maze.Path {
				continue
			}
			x, y := g.GridToWorld(col, row)
			if vmath.Magnitude(x-spawnX, y-spawnY) < 3.0*g.CellSize() {
				continue
			}
			open = append(open, maze.GridPoint{Col: col, Row: row})
		}
	}
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })

	items := make([]*Item, 0, 16)
	next := 0
	take := func(kind render.SpriteKind, count int) {
		for i := 0; i < count && next < len(open); i++ {
			x, y := g.GridToWorld(open[next].Col, open[next].Row)
			next++
			items = append(items, &Item{X: x, Y: y, Kind: kind})
		}
	}

	take(render.SpriteKey, parameter.KeyCount)
	take(render.SpriteArtifact, parameter.ArtifactCount)
	take(render.SpriteNote, parameter.NoteCount)
	take(render.SpriteLight, parameter.LightCount)

	if m.Exit != nil {
		x, y := g.GridToWorld(m.Exit.Col, m.Exit.Row)
		items = append(items, &Item{X: x, Y: y, Kind: render.SpriteDoor})
	}

	return items
}

// PlaceHazards picks spawn cells for hazards, each at least the
// minimum gap away from the player spawn
func PlaceHazards(m *maze.Maze, rng *vmath.FastRand) []*Hazard {
	g := m.Grid
	spawnX, spawnY := g.GridToWorld(m.Spawn.Col, m.Spawn.Row)

	open := make([]maze.GridPoint, 0, g.Width()*g.Height()/2)
	for row := 1; row < g.Height()-1; row++ {
		for col := 1; col < g.Width()-1; col++ {
			if g.CellAt(col, row) != maze.Path {
				continue
			}
			x, y := g.GridToWorld(col, row)
			if vmath.Magnitude(x-spawnX, y-spawnY) < parameter.HazardMinSpawnGap {
				continue
			}
			open = append(open, maze.GridPoint{Col: col, Row: row})
		}
	}
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })

	hazards := make([]*Hazard, 0, parameter.HazardCount)
	for i := 0; i < parameter.HazardCount && i < len(open); i++ {
		x, y := g.GridToWorld(open[i].Col, open[i].Row)
		hazards = append(hazards, NewHazard(x, y))
	}
	return hazards
}
