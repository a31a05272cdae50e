package storage

import (
	"slices"
	"time"
)

// MaxEntries is the number of entries the leaderboard keeps.
const MaxEntries = 20

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	ID        int64
	Name      string
	Score     int
	CreatedAt time.Time
}

// Rank orders entries by score descending and keeps the first MaxEntries.
// The sort is stable, so equal scores stay in insertion order.
func Rank(entries []ScoreEntry) []ScoreEntry {
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b ScoreEntry) int {
		return b.Score - a.Score
	})
	if len(ranked) > MaxEntries {
		ranked = ranked[:MaxEntries]
	}
	return ranked
}

// Leaderboard is implemented by Store and MemoryStore.
type Leaderboard interface {
	Load() ([]ScoreEntry, error)
	Save(entries []ScoreEntry) error
	AddScore(name string, score int) ([]ScoreEntry, error)
	TopScores(limit int) ([]ScoreEntry, error)
	HighScore() (int, error)
	Clear() error
}

var (
	_ Leaderboard = (*Store)(nil)
	_ Leaderboard = (*MemoryStore)(nil)
)
