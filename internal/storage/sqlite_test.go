package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(Run{Variant: "antidote", Score: 12, Outcome: OutcomeWon}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("antidote")
	if err != nil || high != 12 {
		t.Errorf("HighScore = %d, %v; want 12", high, err)
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Variant: "antidote", Score: 100, Kills: 4, Outcome: OutcomeLost, Duration: 42 * time.Second},
		{Variant: "antidote", Score: 50, Outcome: OutcomeLost},
		{Variant: "antidote", Score: 200, Kills: 9, Outcome: OutcomeWon, Duration: 1500 * time.Millisecond},
		{Variant: "survival", Score: 500, Outcome: OutcomeLost},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("antidote", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	for i, want := range []int{200, 100, 50} {
		if top[i].Score != want {
			t.Errorf("run %d score = %d, want %d", i, top[i].Score, want)
		}
	}
	if top[0].Outcome != OutcomeWon || top[0].Kills != 9 {
		t.Errorf("top run = %+v", top[0])
	}
	if top[0].Duration != 1500*time.Millisecond {
		t.Errorf("duration = %v", top[0].Duration)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}

	limited, err := store.TopRuns("antidote", 2)
	if err != nil || len(limited) != 2 {
		t.Errorf("limit 2 returned %d runs, %v", len(limited), err)
	}

	none, err := store.TopRuns("bounty", 10)
	if err != nil || len(none) != 0 {
		t.Errorf("bounty runs = %d, %v", len(none), err)
	}
}

func TestSaveRunRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		run  Run
	}{
		{"empty variant", Run{Outcome: OutcomeLost}},
		{"unknown outcome", Run{Variant: "antidote", Outcome: "draw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveRun(tt.run); !errors.Is(err, ErrInvalidRun) {
				t.Errorf("err = %v, want ErrInvalidRun", err)
			}
		})
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("antidote")
	if err != nil || high != 0 {
		t.Fatalf("empty HighScore = %d, %v", high, err)
	}

	store.SaveRun(Run{Variant: "antidote", Score: 7, Outcome: OutcomeLost})
	store.SaveRun(Run{Variant: "antidote", Score: 30, Outcome: OutcomeWon})
	store.SaveRun(Run{Variant: "classic", Score: 99, Outcome: OutcomeLost})

	if high, _ := store.HighScore("antidote"); high != 30 {
		t.Errorf("HighScore = %d, want 30", high)
	}

	if err := store.ClearRuns("antidote"); err != nil {
		t.Fatal(err)
	}
	if high, _ := store.HighScore("antidote"); high != 0 {
		t.Errorf("HighScore after clear = %d", high)
	}
	if high, _ := store.HighScore("classic"); high != 99 {
		t.Error("clear removed another variant's runs")
	}
}

func TestVariantStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Variant: "antidote", Score: 10, Kills: 3, Outcome: OutcomeLost})
	store.SaveRun(Run{Variant: "antidote", Score: 20, Kills: 5, Outcome: OutcomeWon})

	stats, err := store.VariantStats("antidote")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 2 || stats.Wins != 1 || stats.HighScore != 20 || stats.TotalKills != 8 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 15 {
		t.Errorf("avg = %v, want 15", stats.AvgScore)
	}

	empty, err := store.VariantStats("bounty")
	if err != nil {
		t.Fatal(err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}
