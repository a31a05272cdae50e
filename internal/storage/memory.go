package storage

import (
	"slices"
	"sync"
	"time"
)

// MemoryStore is a leaderboard that lives only for the process lifetime.
// It ranks exactly like Store and is used when no database is available.
type MemoryStore struct {
	mu      sync.Mutex
	entries []ScoreEntry
	nextID  int64
}

// NewMemoryStore creates an empty in-memory leaderboard.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the ranked entries.
func (m *MemoryStore) Load() ([]ScoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.entries), nil
}

// Save replaces the leaderboard with entries, ranked and capped.
func (m *MemoryStore) Save(entries []ScoreEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = Rank(entries)
	return nil
}

// AddScore inserts a score and returns the updated leaderboard.
func (m *MemoryStore) AddScore(name string, score int) ([]ScoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.entries = Rank(append(m.entries, ScoreEntry{
		ID:        m.nextID,
		Name:      name,
		Score:     score,
		CreatedAt: time.Now(),
	}))
	return slices.Clone(m.entries), nil
}

// TopScores returns up to limit entries.
func (m *MemoryStore) TopScores(limit int) ([]ScoreEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	return slices.Clone(m.entries[:limit]), nil
}

// HighScore returns the best score, or 0 for an empty board.
func (m *MemoryStore) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return 0, nil
	}
	return m.entries[0].Score, nil
}

// Clear removes every entry.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}
