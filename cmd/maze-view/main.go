// Interactive maze inspector: generate with chosen parameters, print
// the layout and placement markers to the terminal.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/lantern/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE INSPECTOR ===")

		w := getInt(reader, "Width [odd preferred] (default 31): ", 31)
		h := getInt(reader, "Height [odd preferred] (default 31): ", 31)
		seed := getInt(reader, "Seed (default: time-based): ", 0)
		depth := getInt(reader, "Depth limit (default 15): ", 15)
		branch := getFloat(reader, "Branch chance [0.0 - 1.0] (default 0.35): ", 0.35)

		cfg := maze.Config{
			Width:        w,
			Height:       h,
			Seed:         uint64(seed),
			DepthLimit:   depth,
			BranchChance: branch,
		}
		if seed == 0 {
			cfg.Seed = uint64(time.Now().UnixNano())
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		m := maze.Generate(cfg)
		dur := time.Since(startT)

		fmt.Printf("Done in %v (seed %d)\n", dur, m.Seed)
		fmt.Printf("Grid dimensions: %dx%d\n", m.Grid.Width(), m.Grid.Height())

		if m.Exit != nil {
			fmt.Printf("Exit: col %d, row %d\n", m.Exit.Col, m.Exit.Row)
		} else {
			fmt.Println("Exit: none qualified (game would retry, then force one)")
		}

		draw(m)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(m *maze.Maze) {
	g := m.Grid
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := maze.GridPoint{Col: col, Row: row}

			switch {
			case p == m.Spawn:
				fmt.Print("S")
			case m.Exit != nil && p == *m.Exit:
				fmt.Print("E")
			case g.IsWall(col, row):
				fmt.Print("█")
			default:
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
