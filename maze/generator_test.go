package maze

import "testing"

func TestGenerateDeterminism(t *testing.T) {
	cfg := Config{Width: 21, Height: 21, Seed: 42}

	a := Generate(cfg)
	b := Generate(cfg)

	ca, cb := a.Grid.Cells(), b.Grid.Cells()
	if len(ca) != len(cb) {
		t.Fatalf("Expected equal grid sizes, got %d and %d", len(ca), len(cb))
	}
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("Grids diverged at index %d (cell %d,%d)", i, i%a.Grid.Width(), i/a.Grid.Width())
		}
	}

	if a.Grid.CellAt(0, 0) != Wall {
		t.Error("Expected corner (0,0) to be Wall")
	}
	if a.Grid.CellAt(20, 20) != Wall {
		t.Error("Expected corner (20,20) to be Wall")
	}
	if a.Grid.CellAt(1, 1) != Path {
		t.Error("Expected spawn cell (1,1) to be Path")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := Generate(Config{Width: 21, Height: 21, Seed: 1})
	b := Generate(Config{Width: 21, Height: 21, Seed: 2})

	ca, cb := a.Grid.Cells(), b.Grid.Cells()
	same := true
	for i := range ca {
		if ca[i] != cb[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds produced identical grids")
	}
}

func TestEnclosureInvariant(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		m := Generate(Config{Width: 21, Height: 21, Seed: seed})
		g := m.Grid

		open := []GridPoint{}
		for col := 0; col < g.Width(); col++ {
			for _, row := range []int{0, g.Height() - 1} {
				if g.CellAt(col, row) != Wall {
					open = append(open, GridPoint{col, row})
				}
			}
		}
		for row := 1; row < g.Height()-1; row++ {
			for _, col := range []int{0, g.Width() - 1} {
				if g.CellAt(col, row) != Wall {
					open = append(open, GridPoint{col, row})
				}
			}
		}

		if m.Exit == nil {
			if len(open) != 0 {
				t.Errorf("Seed %d: no exit set but border cells open: %v", seed, open)
			}
			continue
		}
		if len(open) != 1 {
			t.Errorf("Seed %d: expected exactly one open border cell, got %v", seed, open)
			continue
		}
		if open[0] != *m.Exit {
			t.Errorf("Seed %d: open border cell %v does not match exit %v", seed, open[0], *m.Exit)
		}
	}
}

func TestExitInteriorNeighbourIsPath(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		m := Generate(Config{Width: 21, Height: 21, Seed: seed})
		if m.Exit == nil {
			continue
		}
		g := m.Grid
		e := *m.Exit

		inner := e
		switch {
		case e.Row == 0:
			inner.Row = 1
		case e.Row == g.Height()-1:
			inner.Row = g.Height() - 2
		case e.Col == 0:
			inner.Col = 1
		case e.Col == g.Width()-1:
			inner.Col = g.Width() - 2
		default:
			t.Errorf("Seed %d: exit %v is not on the border", seed, e)
			continue
		}

		if g.CellAt(inner.Col, inner.Row) != Path {
			t.Errorf("Seed %d: interior neighbour %v of exit %v is not Path", seed, inner, e)
		}
	}
}

func TestSpawnClearing(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		m := Generate(Config{Width: 21, Height: 21, Seed: seed, SpawnCorridor: 2})
		g := m.Grid

		if g.CellAt(m.Spawn.Col, m.Spawn.Row) != Path {
			t.Fatalf("Seed %d: spawn cell is not Path", seed)
		}

		// Forced corridors in every direction, clipped at the border shell
		dirs := []GridPoint{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
		for _, d := range dirs {
			for k := 1; k <= 2; k++ {
				nc, nr := m.Spawn.Col+d.Col*k, m.Spawn.Row+d.Row*k
				if nc <= 0 || nc >= g.Width()-1 || nr <= 0 || nr >= g.Height()-1 {
					break
				}
				if g.CellAt(nc, nr) != Path {
					t.Errorf("Seed %d: spawn corridor cell (%d,%d) is not Path", seed, nc, nr)
				}
			}
		}
	}
}

func TestResolveSpawnForcesOpen(t *testing.T) {
	m := Generate(Config{Width: 11, Height: 11, Seed: 3})
	// Sabotage the invariant to verify the defensive re-check
	m.Grid.set(m.Spawn.Col, m.Spawn.Row, Wall)

	x, y := m.ResolveSpawn()
	if m.Grid.CellAt(m.Spawn.Col, m.Spawn.Row) != Path {
		t.Error("Expected ResolveSpawn to force the spawn cell open")
	}
	if m.Grid.IsWallWorld(x, y) {
		t.Error("Expected resolved spawn point to be walkable")
	}
}

func TestForceExit(t *testing.T) {
	m := Generate(Config{Width: 21, Height: 21, Seed: 42})
	m.Exit = nil
	m.ForceExit()

	if m.Exit == nil {
		t.Fatal("Expected ForceExit to set the exit cell")
	}
	g := m.Grid
	if g.CellAt(m.Exit.Col, m.Exit.Row) != Path {
		t.Error("Expected forced exit cell to be Path")
	}
	if g.CellAt(g.Width()-2, m.Exit.Row) != Path {
		t.Error("Expected forced exit interior neighbour to be Path")
	}
}

// Density characteristics per the tuning in parameter: the depth limit
// and branch bias should yield junction-heavy mazes with short corridor
// runs. Bands are statistical, not bit-exact.
func TestMazeDensityCharacteristics(t *testing.T) {
	var junctionRate, runLength float64
	const seeds = 20

	for seed := uint64(1); seed <= seeds; seed++ {
		m := Generate(Config{Width: 31, Height: 31, Seed: seed})
		g := m.Grid

		open, junctions := 0, 0
		for row := 1; row < g.Height()-1; row++ {
			for col := 1; col < g.Width()-1; col++ {
				if g.CellAt(col, row) != Path {
					continue
				}
				open++
				exits := 0
				for _, d := range []GridPoint{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
					if g.CellAt(col+d.Col, row+d.Row) == Path {
						exits++
					}
				}
				if exits >= 3 {
					junctions++
				}
			}
		}
		if open == 0 {
			t.Fatalf("Seed %d: no open cells", seed)
		}
		junctionRate += float64(junctions) / float64(open) * 100

		// Mean horizontal run of consecutive open cells
		runs, total := 0, 0
		for row := 1; row < g.Height()-1; row++ {
			run := 0
			for col := 1; col < g.Width(); col++ {
				if g.CellAt(col, row) == Path {
					run++
				} else if run > 0 {
					runs++
					total += run
					run = 0
				}
			}
		}
		if runs > 0 {
			runLength += float64(total) / float64(runs)
		}
	}

	junctionRate /= seeds
	runLength /= seeds

	if junctionRate < 2 || junctionRate > 45 {
		t.Errorf("Junction rate %.1f per 100 open cells outside expected band", junctionRate)
	}
	if runLength < 1.2 || runLength > 10 {
		t.Errorf("Mean corridor run length %.2f outside expected band", runLength)
	}
}

func TestGenerateSmallDimensionsClamped(t *testing.T) {
	m := Generate(Config{Width: 2, Height: 2, Seed: 1})
	if m.Grid.Width() != 5 || m.Grid.Height() != 5 {
		t.Errorf("Expected 5x5 minimum grid, got %dx%d", m.Grid.Width(), m.Grid.Height())
	}
}

func TestGenerateEvenDimensionsRoundDown(t *testing.T) {
	m := Generate(Config{Width: 20, Height: 22, Seed: 1})
	if m.Grid.Width() != 19 || m.Grid.Height() != 21 {
		t.Errorf("Expected 19x21 grid, got %dx%d", m.Grid.Width(), m.Grid.Height())
	}
}
