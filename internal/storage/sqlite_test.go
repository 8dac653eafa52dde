package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tarot-arcade/internal/registry"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("tarot", 1200)
	store.AddGold(40)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("tarot"); high != 1200 {
		t.Errorf("Expected high score 1200 after reopen, got %d", high)
	}
	if gold, _ := store.Gold(); gold != 40 {
		t.Errorf("Expected 40 gold after reopen, got %d", gold)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("tarot", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tarot_esoteric", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tarot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	other, err := store.TopScores("tarot_esoteric", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 esoteric score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("tarot", (i+1)*100)
	}

	scores, err := store.TopScores("tarot", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("tarot")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tarot")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tarot", 100)
	store.SaveScore("tarot", 300)
	store.SaveScore("tarot", 200)

	high, err = store.HighScore("tarot")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []registry.RunStats{
		{Score: 800, Level: 2, Lines: 12, TSpins: 1, Pieces: 40, GoldEarned: 20, Duration: 95 * time.Second},
		{Score: 2400, Level: 4, Lines: 38, TSpins: 3, Pieces: 101, GoldEarned: 90, Duration: 4 * time.Minute},
		{Score: 100, Level: 1, Lines: 2, Pieces: 9, Duration: 1500 * time.Millisecond},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("tarot", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("tarot", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(top))
	}
	best := top[0]
	if best.Score != 2400 || best.Level != 4 || best.Lines != 38 || best.TSpins != 3 || best.Gold != 90 {
		t.Errorf("Unexpected best run: %+v", best)
	}
	if best.Duration != 240 {
		t.Errorf("Expected duration 240s, got %d", best.Duration)
	}

	stats, err := store.GetGameStats("tarot")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.BestLevel != 4 || stats.BestLines != 38 {
		t.Errorf("Expected best level 4 and lines 38, got %d and %d", stats.BestLevel, stats.BestLines)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tarot", 100)
	store.SaveScore("tarot", 200)
	store.SaveRun("tarot", registry.RunStats{Score: 200})
	store.SaveScore("tarot_esoteric", 300)

	if err := store.ClearScores("tarot"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("tarot", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.TopRuns("tarot", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if other, _ := store.TopScores("tarot_esoteric", 10); len(other) != 1 {
		t.Errorf("Other games should not be affected by clearing tarot")
	}
}

func TestStoreWallet(t *testing.T) {
	store := openTestStore(t)

	gold, err := store.Gold()
	if err != nil {
		t.Fatalf("Gold() failed: %v", err)
	}
	if gold != 0 {
		t.Errorf("Expected empty wallet, got %d", gold)
	}

	if gold, err = store.AddGold(30); err != nil || gold != 30 {
		t.Errorf("AddGold(30) = %d, %v", gold, err)
	}
	if gold, err = store.AddGold(-10); err != nil || gold != 20 {
		t.Errorf("AddGold(-10) = %d, %v", gold, err)
	}
	if gold, err = store.AddGold(-100); err != nil || gold != 0 {
		t.Errorf("Wallet should not go negative, got %d, %v", gold, err)
	}
}
