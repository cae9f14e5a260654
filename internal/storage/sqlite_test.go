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

func save(t *testing.T, store *Store, run Run) string {
	t.Helper()
	id, err := store.SaveScore(run)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Run{GameID: "chroma", Score: 100, Moves: 12, Width: 6, Height: 6})
	save(t, store, Run{GameID: "chroma", Score: 50, Moves: 3, Width: 6, Height: 6})
	save(t, store, Run{GameID: "chroma", Score: 200, Moves: 40, Width: 6, Height: 6, Completed: true})
	save(t, store, Run{GameID: "chroma_color", Score: 500, Moves: 9, Width: 4, Height: 4})

	scores, err := store.TopScores("chroma", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if !scores[0].Completed || scores[0].Moves != 40 || scores[0].Width != 6 {
		t.Errorf("Run fields not stored: %+v", scores[0])
	}
	if scores[0].RunID == "" || scores[0].RunID == scores[1].RunID {
		t.Error("Each run needs a unique run ID")
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	colorScores, err := store.TopScores("chroma_color", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(colorScores) != 1 {
		t.Errorf("Expected 1 color score, got %d", len(colorScores))
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(Run{Score: 10}); err == nil {
		t.Error("Expected error for empty game id")
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Run{GameID: "chroma", Score: 100, Moves: 30})
	save(t, store, Run{GameID: "chroma", Score: 100, Moves: 10})

	scores, err := store.TopScores("chroma", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Moves != 10 {
		t.Errorf("Fewer moves should rank first on equal score: %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		save(t, store, Run{GameID: "test", Score: (i + 1) * 100})
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
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id := save(t, store, Run{GameID: "chroma", Puzzle: "01-pair", Score: 100, Moves: 3, Completed: true})

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Puzzle != "01-pair" || !run.Completed {
		t.Errorf("Unexpected run %+v", run)
	}

	missing, err := store.RunByID("no-such-run")
	if err != nil || missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v, %v", missing, err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("chroma")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, Run{GameID: "chroma", Score: 100})
	save(t, store, Run{GameID: "chroma", Score: 300})
	save(t, store, Run{GameID: "chroma", Score: 200})

	high, err = store.HighScore("chroma")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Run{GameID: "chroma", Score: 100})
	save(t, store, Run{GameID: "chroma", Score: 200})
	save(t, store, Run{GameID: "chroma_advanced", Score: 300})

	if err := store.ClearScores("chroma"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("chroma", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("chroma_advanced", 10)
	if len(kept) != 1 {
		t.Errorf("Other modes should not be affected by clearing chroma")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		save(t, store, Run{GameID: "test", Score: i * 10})
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("chroma")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for unplayed game: %+v", empty)
	}

	save(t, store, Run{GameID: "chroma", Score: 100, Moves: 10, Completed: true})
	save(t, store, Run{GameID: "chroma", Score: 300, Moves: 20})
	save(t, store, Run{GameID: "chroma_color", Score: 50, Moves: 5})

	stats, err := store.GetGameStats("chroma")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Completions != 1 || stats.HighScore != 300 ||
		stats.AvgScore != 200 || stats.TotalScore != 400 || stats.TotalMoves != 30 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["chroma_color"].HighScore != 50 {
		t.Errorf("Unexpected stats map %+v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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
