package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func newTestStore(t *testing.T) *Store {
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("hearts", 120); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("hearts")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore after reopen = %d, want 120", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := newTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("hearts", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].GameID != "classic" {
		t.Errorf("GameID = %q, want classic", scores[0].GameID)
	}

	heartsScores, err := store.TopScores("hearts", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(heartsScores) != 1 {
		t.Errorf("Expected 1 hearts score, got %d", len(heartsScores))
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := newTestStore(t)

	id, err := store.SaveResult(Result{
		GameID:    "hearts",
		Player:    "alice",
		Score:     340,
		Won:       true,
		Swaps:     12,
		BestChain: 3,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveResult() id = %d, want positive", id)
	}

	scores, err := store.TopScores("hearts", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}

	e := scores[0]
	if e.Player != "alice" || !e.Won || e.Swaps != 12 || e.BestChain != 3 {
		t.Errorf("round-tripped entry = %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	if _, err := store.SaveResult(Result{Score: 1}); err == nil {
		t.Error("SaveResult without game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := newTestStore(t)

	store.SaveResult(Result{GameID: "endless", Player: "bob", Score: 10})
	store.SaveResult(Result{GameID: "endless", Player: "carol", Score: 99})
	store.SaveResult(Result{GameID: "endless", Player: "bob", Score: 30})

	scores, err := store.PlayerScores("endless", "bob", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores for bob, got %d", len(scores))
	}
	// Most recent first
	if scores[0].Score != 30 || scores[1].Score != 10 {
		t.Errorf("PlayerScores order = %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := newTestStore(t)

	high, err := store.HighScore("hearts")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("hearts", 100)
	store.SaveScore("hearts", 300)
	store.SaveScore("hearts", 200)

	high, err = store.HighScore("hearts")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := newTestStore(t)

	store.SaveScore("classic", 100)
	store.SaveScore("classic", 200)
	store.SaveScore("hearts", 300)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classicScores, _ := store.TopScores("classic", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	heartsScores, _ := store.TopScores("hearts", 10)
	if len(heartsScores) != 1 {
		t.Errorf("Hearts scores should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := newTestStore(t)

	empty, err := store.GetGameStats("hearts")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.WinRate() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveResult(Result{GameID: "hearts", Score: 100, Won: true, BestChain: 2})
	store.SaveResult(Result{GameID: "hearts", Score: 300, Won: false, BestChain: 4})
	store.SaveResult(Result{GameID: "hearts", Score: 200, Won: true, BestChain: 1})
	store.SaveResult(Result{GameID: "classic", Score: 999})

	stats, err := store.GetGameStats("hearts")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, want 2", stats.Wins)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, want 600", stats.TotalScore)
	}
	if stats.BestChain != 4 {
		t.Errorf("BestChain = %d, want 4", stats.BestChain)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["classic"].HighScore != 999 || all["hearts"].Wins != 2 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := store.SaveResult(Result{GameID: "endless", Player: "p", Score: n}); err != nil {
				t.Errorf("SaveResult() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	stats, err := store.GetGameStats("endless")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 8 {
		t.Errorf("GamesCount = %d, want 8", stats.GamesCount)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.match3/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".match3", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
