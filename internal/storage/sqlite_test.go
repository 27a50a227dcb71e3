package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct{ score, level int }{
		{100, 2}, {50, 1}, {200, 3},
	} {
		if _, err := store.SaveScore(run.score, run.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[0].Level != 3 {
		t.Errorf("Expected top entry 200/3, got %d/%d", scores[0].Score, scores[0].Level)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(i*10, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores for default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database returns 0
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty database, got %d", high)
	}

	store.SaveScore(120, 2)
	store.SaveScore(340, 4)
	store.SaveScore(90, 1)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 340 {
		t.Errorf("Expected high score 340, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 1)
	store.SaveScore(200, 2)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreSnapshotRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// Empty slot
	_, ok, err := store.LoadSnapshot("quick")
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if ok {
		t.Error("Expected empty slot to report not found")
	}

	if err := store.SaveSnapshot("quick", `{"score":1}`); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	state, ok, err := store.LoadSnapshot("quick")
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if !ok || state != `{"score":1}` {
		t.Errorf("Loaded %q (found=%v), want stored snapshot", state, ok)
	}

	// Saving again replaces the slot
	if err := store.SaveSnapshot("quick", `{"score":2}`); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	state, _, err = store.LoadSnapshot("quick")
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if state != `{"score":2}` {
		t.Errorf("Expected replaced snapshot, got %q", state)
	}

	if err := store.DeleteSnapshot("quick"); err != nil {
		t.Fatalf("DeleteSnapshot() failed: %v", err)
	}
	_, ok, err = store.LoadSnapshot("quick")
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if ok {
		t.Error("Expected deleted slot to report not found")
	}
}
