package maze

import (
	"github.com/lixenwraith/lantern/vmath"
)

// Config controls one generation pass
type Config struct {
	Width, Height int

	// CellSize is the world-units span of one grid cell (0 = 1.0)
	CellSize float64

	// Seed drives the deterministic carve stream (0 = 1)
	Seed uint64

	// DepthLimit caps corridor run length between junctions (0 = default).
	// Short runs force intersections instead of long single corridors.
	DepthLimit int

	// BranchChance is the probability of carving a second direction from
	// a cell that has more than one unvisited neighbour (0 = default)
	BranchChance float64

	// SpawnCorridor is the forced clear hallway length in each cardinal
	// direction from the spawn cell (0 = default)
	SpawnCorridor int
}

const (
	defaultDepthLimit    = 15
	defaultBranchChance  = 0.35
	defaultSpawnCorridor = 2
)

// Maze wraps the generated grid and its generation metadata.
// Immutable after Generate; visual breathing effects are display-time
// transforms and never touch the grid.
type Maze struct {
	Grid  *Grid
	Seed  uint64
	Spawn GridPoint

	// Exit is the carved border cell, nil when no edge candidate
	// qualified. Callers retry with another seed or call ForceExit.
	Exit *GridPoint
}

// Generate carves a maze with a seeded depth-limited backtracker.
// Two calls with the same seed and dimensions produce bit-identical
// grids: every random draw comes from one explicit xorshift stream
// consumed in a fixed order.
func Generate(cfg Config) *Maze {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	cellSize := cfg.CellSize
	if cellSize <= 0 {
		cellSize = 1.0
	}
	depthLimit := cfg.DepthLimit
	if depthLimit <= 0 {
		depthLimit = defaultDepthLimit
	}
	branch := cfg.BranchChance
	if branch <= 0 {
		branch = defaultBranchChance
	}
	corridor := cfg.SpawnCorridor
	if corridor <= 0 {
		corridor = defaultSpawnCorridor
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	g := newGrid(cols, rows, cellSize)
	rng := vmath.NewFastRand(seed)

	spawn := GridPoint{Col: 1, Row: 1}
	carve(g, spawn, depthLimit, branch, rng)

	// Post-processing order matters: spawn clearing first so the exit
	// scan sees the final interior layout.
	clearSpawn(g, spawn, corridor)
	exit := carveExit(g)

	return &Maze{
		Grid:  g,
		Seed:  seed,
		Spawn: spawn,
		Exit:  exit,
	}
}

type carveFrame struct {
	p     GridPoint
	depth int
}

// carve runs the backtracker over the odd-cell lattice with an explicit
// stack. Moves are 2 cells so odd-indexed cells stay walls, giving
// corridor-width-1 paths. depth is the corridor run since the last
// junction; exceeding depthLimit pops the branch.
func carve(g *Grid, start GridPoint, depthLimit int, branch float64, rng *vmath.FastRand) {
	dirs := [4]GridPoint{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	stack := []carveFrame{{p: start, depth: 0}}
	g.set(start.Col, start.Row, Path)

	cand := make([]GridPoint, 0, 4)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		if cur.depth >= depthLimit {
			stack = stack[:len(stack)-1]
			continue
		}

		cand = cand[:0]
		for _, d := range dirs {
			nc, nr := cur.p.Col+d.Col, cur.p.Row+d.Row
			// Leave the one-cell border shell intact
			if nc > 0 && nc < g.width-1 && nr > 0 && nr < g.height-1 {
				if g.CellAt(nc, nr) == Wall {
					cand = append(cand, GridPoint{Col: nc, Row: nr})
				}
			}
		}

		if len(cand) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		if len(cand) > 1 {
			rng.Shuffle(len(cand), func(i, j int) { cand[i], cand[j] = cand[j], cand[i] })
		}

		next := cand[0]
		carveThrough(g, cur.p, next)
		stack = append(stack, carveFrame{p: next, depth: cur.depth + 1})

		// Junction bias: sometimes open a second direction immediately.
		// Both arms restart their run count at the new junction.
		if len(cand) > 1 && rng.Float64() < branch {
			second := cand[1]
			carveThrough(g, cur.p, second)
			stack = append(stack, carveFrame{p: second, depth: 1})
		}
	}
}

// carveThrough opens the wall between two lattice cells plus the target
func carveThrough(g *Grid, from, to GridPoint) {
	g.set(from.Col+(to.Col-from.Col)/2, from.Row+(to.Row-from.Row)/2, Path)
	g.set(to.Col, to.Row, Path)
}

// clearSpawn forces a cross-shaped clearing: the spawn cell plus
// single-width corridors in all four cardinal directions, overriding
// whatever the carve produced. Guarantees the player never spawns
// enclosed. Corridors clip at the border shell.
func clearSpawn(g *Grid, spawn GridPoint, corridor int) {
	g.set(spawn.Col, spawn.Row, Path)

	dirs := [4]GridPoint{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range dirs {
		for k := 1; k <= corridor; k++ {
			nc, nr := spawn.Col+d.Col*k, spawn.Row+d.Row*k
			if nc <= 0 || nc >= g.width-1 || nr <= 0 || nr >= g.height-1 {
				break
			}
			g.set(nc, nr, Path)
		}
	}
}

// carveExit scans the four border-edge midpoints in a fixed order and
// opens the first one whose interior neighbour is already a path. The
// opened border cell and that interior neighbour form the exit pair.
// Returns nil when no candidate qualifies; the caller decides policy.
func carveExit(g *Grid) *GridPoint {
	midX := (g.width / 2) | 1
	midY := (g.height / 2) | 1

	candidates := []struct {
		edge, inner GridPoint
	}{
		{GridPoint{midX, 0}, GridPoint{midX, 1}},
		{GridPoint{g.width - 1, midY}, GridPoint{g.width - 2, midY}},
		{GridPoint{midX, g.height - 1}, GridPoint{midX, g.height - 2}},
		{GridPoint{0, midY}, GridPoint{1, midY}},
	}

	for _, c := range candidates {
		if g.CellAt(c.inner.Col, c.inner.Row) == Path {
			g.set(c.edge.Col, c.edge.Row, Path)
			e := c.edge
			return &e
		}
	}
	return nil
}

// ForceExit opens the right-edge midpoint unconditionally, including
// its interior neighbour. Fallback for when generation retries exhaust
// without a qualifying edge candidate.
func (m *Maze) ForceExit() {
	g := m.Grid
	midY := (g.height / 2) | 1
	edge := GridPoint{Col: g.width - 1, Row: midY}

	g.set(g.width-2, midY, Path)
	g.set(edge.Col, edge.Row, Path)
	m.Exit = &edge
}

// ResolveSpawn returns the world-space spawn point. The spawn cell is
// defensively forced open: a walled spawn makes the maze unplayable,
// so the invariant is re-checked here even though clearSpawn already
// guarantees it.
func (m *Maze) ResolveSpawn() (x, y float64) {
	if m.Grid.CellAt(m.Spawn.Col, m.Spawn.Row) == Wall {
		m.Grid.set(m.Spawn.Col, m.Spawn.Row, Path)
	}
	return m.Grid.GridToWorld(m.Spawn.Col, m.Spawn.Row)
}

func ensureOdd(n int) int {
	if n < 5 {
		return 5
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
