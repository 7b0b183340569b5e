// Package progress persists meta-progression between sessions: level,
// experience, run counters and unlocked achievements. One record is
// loaded at session start and written back after each run resolves.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Record is the on-disk progression state
type Record struct {
	Level      int `json:"level"`
	Experience int `json:"experience"`

	RunsStarted    int `json:"runs_started"`
	RunsWon        int `json:"runs_won"`
	RunsLost       int `json:"runs_lost"`
	ArtifactsFound int `json:"artifacts_found"`
	NotesRead      int `json:"notes_read"`

	// BestWinSeconds is 0 until the first win
	BestWinSeconds float64 `json:"best_win_seconds"`

	Achievements []string `json:"achievements"`
}

// RunResult summarizes one finished run for progression accounting
type RunResult struct {
	Won       bool
	Artifacts int
	Notes     int
	HitsTaken bool
	FullClear bool
	Duration  time.Duration
}

const (
	xpPerWin      = 120
	xpPerLoss     = 30
	xpPerArtifact = 25
	xpPerNote     = 15
)

// New returns a fresh level-1 record
func New() *Record {
	return &Record{Level: 1}
}

// Load reads a record from path. A missing file is not an error and
// yields a fresh record; a corrupt file is reported.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("progress read: %w", err)
	}

	r := New()
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("progress decode: %w", err)
	}
	if r.Level < 1 {
		r.Level = 1
	}
	return r, nil
}

// Save writes the record to path, creating parent directories as
// needed. Writes go through a temp file and rename so an interrupted
// save never truncates the previous record.
func (r *Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("progress encode: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("progress dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("progress write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("progress rename: %w", err)
	}
	return nil
}

// DefaultPath places the record under the user config directory,
// falling back to the working directory when none is resolvable
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "lantern-progress.json"
	}
	return filepath.Join(dir, "lantern", "progress.json")
}

// ApplyRun folds one run result into the record: counters, experience,
// level-ups and achievement unlocks
func (r *Record) ApplyRun(res RunResult) {
	r.RunsStarted++
	r.ArtifactsFound += res.Artifacts
	r.NotesRead += res.Notes

	xp := xpPerArtifact*res.Artifacts + xpPerNote*res.Notes
	if res.Won {
		r.RunsWon++
		xp += xpPerWin

		secs := res.Duration.Seconds()
		if r.BestWinSeconds == 0 || secs < r.BestWinSeconds {
			r.BestWinSeconds = secs
		}
	} else {
		r.RunsLost++
		xp += xpPerLoss
	}

	r.Experience += xp
	for r.Experience >= r.nextLevelCost() {
		r.Experience -= r.nextLevelCost()
		r.Level++
	}

	r.unlock(res)
}

// nextLevelCost grows linearly with level
func (r *Record) nextLevelCost() int {
	return 100 + (r.Level-1)*50
}

func (r *Record) unlock(res RunResult) {
	if res.Won {
		r.grant("first-light")
	}
	if res.Won && !res.HitsTaken {
		r.grant("untouched")
	}
	if res.FullClear {
		r.grant("collector")
	}
	if r.RunsStarted >= 10 {
		r.grant("cartographer")
	}
}

func (r *Record) grant(id string) {
	for _, have := range r.Achievements {
		if have == id {
			return
		}
	}
	r.Achievements = append(r.Achievements, id)
}

// Has reports whether an achievement is unlocked
func (r *Record) Has(id string) bool {
	for _, have := range r.Achievements {
		if have == id {
			return true
		}
	}
	return false
}

// FuelScale is the fuel-burn multiplier earned by levels. Lower is
// better, floored so the candle never becomes free.
func (r *Record) FuelScale() float64 {
	s := 1.0 - 0.04*float64(r.Level-1)
	if s < 0.6 {
		s = 0.6
	}
	return s
}

// SpeedScale is the movement multiplier earned by levels, capped
func (r *Record) SpeedScale() float64 {
	s := 1.0 + 0.03*float64(r.Level-1)
	if s > 1.3 {
		s = 1.3
	}
	return s
}
