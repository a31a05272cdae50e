package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreOpenCorruptFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "junk.db")
	junk := []byte(strings.Repeat("not a database ", 128))
	if err := os.WriteFile(dbPath, junk, 0o600); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	store, err := Open(dbPath, WithLogger(log.New(&logs)))
	if err != nil {
		t.Fatalf("Open() on a corrupt file failed: %v", err)
	}
	entries, err := store.Load()
	if err != nil || len(entries) != 0 {
		t.Errorf("Load() = %v, %v; expected an empty board", entries, err)
	}
	if _, err := store.AddScore("ZED", 7); err != nil {
		t.Fatalf("AddScore() failed: %v", err)
	}
	store.Close()

	if !strings.Contains(logs.String(), "corrupt") {
		t.Errorf("expected a warning about the corrupt file, got %q", logs.String())
	}
	saved, err := os.ReadFile(dbPath + ".corrupt")
	if err != nil || !bytes.Equal(saved, junk) {
		t.Errorf("corrupt file should be kept aside unchanged (err=%v)", err)
	}

	// The next run sees the score written after recovery
	reopened, err := Open(dbPath, WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	entries, err = reopened.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "ZED" || entries[0].Score != 7 {
		t.Errorf("entries after reopen = %+v, expected ZED/7", entries)
	}
}

func TestStoreAddScoreOnEmptyStore(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.AddScore("BOB", 42)
	if err != nil {
		t.Fatalf("AddScore() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "BOB" || entries[0].Score != 42 {
		t.Errorf("entry = %+v, expected BOB/42", entries[0])
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreKeepsTopTwenty(t *testing.T) {
	store := openTestStore(t)

	// 21 distinct scores: 0, 10, ..., 200
	for i := 0; i <= 20; i++ {
		if _, err := store.AddScore(fmt.Sprintf("P%02d", i), i*10); err != nil {
			t.Fatalf("AddScore(%d) failed: %v", i, err)
		}
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(entries))
	}
	if entries[0].Score != 200 {
		t.Errorf("top score = %d, expected 200", entries[0].Score)
	}
	for _, e := range entries {
		if e.Score == 0 {
			t.Error("lowest score should have been pruned")
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Errorf("entries not descending at %d: %d > %d", i, entries[i].Score, entries[i-1].Score)
		}
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"AAA", "BBB", "CCC"} {
		if _, err := store.AddScore(name, 7); err != nil {
			t.Fatalf("AddScore() failed: %v", err)
		}
	}
	entries, err := store.AddScore("TOP", 9)
	if err != nil {
		t.Fatalf("AddScore() failed: %v", err)
	}

	expected := []string{"TOP", "AAA", "BBB", "CCC"}
	for i, name := range expected {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %s, expected %s", i, entries[i].Name, name)
		}
	}
}

func TestStoreSaveReplacesBoard(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.AddScore("OLD", 1); err != nil {
		t.Fatal(err)
	}

	err := store.Save([]ScoreEntry{
		{Name: "LOW", Score: 3},
		{Name: "HIG", Score: 30},
		{Name: "MID", Score: 10},
	})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries after Save, got %d", len(entries))
	}
	if entries[0].Name != "HIG" || entries[1].Name != "MID" || entries[2].Name != "LOW" {
		t.Errorf("unexpected order: %+v", entries)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty store high score = %d, expected 0", high)
	}

	store.AddScore("ONE", 5)
	store.AddScore("TWO", 12)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("high score = %d, expected 12", high)
	}

	top, err := store.TopScores(1)
	if err != nil || len(top) != 1 || top[0].Name != "TWO" {
		t.Errorf("TopScores(1) = %+v, %v", top, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	entries, _ := store.Load()
	if len(entries) != 0 {
		t.Errorf("expected empty board after Clear, got %d", len(entries))
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.AddScore("SAV", 77)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "SAV" || entries[0].Score != 77 {
		t.Errorf("entries after reopen = %+v", entries)
	}
}
