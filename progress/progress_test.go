package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsFreshRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if r.Level != 1 || r.RunsStarted != 0 {
		t.Errorf("Expected a fresh level-1 record, got %+v", r)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	r := New()
	r.ApplyRun(RunResult{Won: true, Artifacts: 3, Notes: 2, FullClear: true, Duration: 90 * time.Second})

	if err := r.Save(path); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if got.Level != r.Level || got.Experience != r.Experience {
		t.Errorf("Expected level %d xp %d back, got level %d xp %d", r.Level, r.Experience, got.Level, got.Experience)
	}
	if got.RunsWon != 1 || got.BestWinSeconds != 90 {
		t.Errorf("Expected run counters preserved, got %+v", got)
	}
	if !got.Has("first-light") || !got.Has("collector") {
		t.Errorf("Expected achievements preserved, got %v", got.Achievements)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for a corrupt record")
	}
}

func TestApplyRunLevelUp(t *testing.T) {
	r := New()

	// 120 + 75 + 30 = 225 xp: past the 100 cost of level 1 and the 150
	// cost of level 2, never negative
	r.ApplyRun(RunResult{Won: true, Artifacts: 3})
	r.ApplyRun(RunResult{Won: false, Notes: 2})

	if r.Level < 2 {
		t.Errorf("Expected at least one level-up, got level %d", r.Level)
	}
	if r.Experience < 0 {
		t.Errorf("Expected non-negative carryover xp, got %d", r.Experience)
	}
	if r.RunsWon != 1 || r.RunsLost != 1 || r.RunsStarted != 2 {
		t.Errorf("Expected run counters 1/1/2, got %d/%d/%d", r.RunsWon, r.RunsLost, r.RunsStarted)
	}
}

func TestBestWinTimeOnlyImproves(t *testing.T) {
	r := New()
	r.ApplyRun(RunResult{Won: true, Duration: 120 * time.Second})
	r.ApplyRun(RunResult{Won: true, Duration: 200 * time.Second})
	if r.BestWinSeconds != 120 {
		t.Errorf("Expected best time to stay at 120, got %v", r.BestWinSeconds)
	}
	r.ApplyRun(RunResult{Won: true, Duration: 60 * time.Second})
	if r.BestWinSeconds != 60 {
		t.Errorf("Expected best time to improve to 60, got %v", r.BestWinSeconds)
	}
}

func TestAchievementsGrantOnce(t *testing.T) {
	r := New()
	r.ApplyRun(RunResult{Won: true})
	r.ApplyRun(RunResult{Won: true})

	seen := 0
	for _, id := range r.Achievements {
		if id == "first-light" {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("Expected first-light granted exactly once, got %d", seen)
	}
}

func TestUntouchedRequiresCleanWin(t *testing.T) {
	r := New()
	r.ApplyRun(RunResult{Won: true, HitsTaken: true})
	if r.Has("untouched") {
		t.Error("Expected no untouched unlock after taking hits")
	}
	r.ApplyRun(RunResult{Won: true})
	if !r.Has("untouched") {
		t.Error("Expected untouched unlock on a clean win")
	}
}

func TestUpgradeScalesBounded(t *testing.T) {
	r := New()
	if r.FuelScale() != 1.0 || r.SpeedScale() != 1.0 {
		t.Errorf("Expected neutral scales at level 1, got %v and %v", r.FuelScale(), r.SpeedScale())
	}

	r.Level = 50
	if got := r.FuelScale(); got != 0.6 {
		t.Errorf("Expected fuel scale floored at 0.6, got %v", got)
	}
	if got := r.SpeedScale(); got != 1.3 {
		t.Errorf("Expected speed scale capped at 1.3, got %v", got)
	}
}
