package storage

import "testing"

func TestMemoryStoreAddScore(t *testing.T) {
	m := NewMemoryStore()

	entries, err := m.AddScore("BOB", 42)
	if err != nil {
		t.Fatalf("AddScore() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "BOB" || entries[0].Score != 42 {
		t.Errorf("entries = %+v, expected [BOB 42]", entries)
	}

	for i := 0; i < 25; i++ {
		m.AddScore("X", i)
	}
	entries, _ = m.Load()
	if len(entries) != MaxEntries {
		t.Errorf("expected %d entries, got %d", MaxEntries, len(entries))
	}
	if entries[0].Score != 42 {
		t.Errorf("top score = %d, expected 42", entries[0].Score)
	}

	high, _ := m.HighScore()
	if high != 42 {
		t.Errorf("HighScore() = %d", high)
	}

	top, _ := m.TopScores(3)
	if len(top) != 3 {
		t.Errorf("TopScores(3) returned %d", len(top))
	}
}

func TestMemoryStoreLoadReturnsCopy(t *testing.T) {
	m := NewMemoryStore()
	m.AddScore("ABC", 1)

	entries, _ := m.Load()
	entries[0].Name = "ZZZ"

	again, _ := m.Load()
	if again[0].Name != "ABC" {
		t.Error("Load() should not expose internal state")
	}

	m.Clear()
	again, _ = m.Load()
	if len(again) != 0 {
		t.Error("Clear() should empty the board")
	}
}

func TestRankStableTies(t *testing.T) {
	ranked := Rank([]ScoreEntry{
		{Name: "A", Score: 5},
		{Name: "B", Score: 9},
		{Name: "C", Score: 5},
		{Name: "D", Score: 5},
	})

	expected := []string{"B", "A", "C", "D"}
	for i, name := range expected {
		if ranked[i].Name != name {
			t.Errorf("ranked[%d] = %s, expected %s", i, ranked[i].Name, name)
		}
	}
}
