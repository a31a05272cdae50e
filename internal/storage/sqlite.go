// Package storage provides SQLite-based persistence for the leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"modernc.org/sqlite" // Pure Go SQLite driver
	sqlite3 "modernc.org/sqlite/lib"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
	mu sync.Mutex // serializes read-modify-write in AddScore
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	logger *log.Logger
}

// WithLogger sets the logger used to report a recovered database file.
func WithLogger(l *log.Logger) Option {
	return func(o *openOptions) { o.logger = l }
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A file that is not a SQLite database is moved aside to <path>.corrupt
// and replaced by an empty database.
func Open(dbPath string, opts ...Option) (*Store, error) {
	o := openOptions{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	store, err := openStore(dbPath)
	if err == nil || !isNotADatabase(err) {
		return store, err
	}

	aside := dbPath + ".corrupt"
	if rerr := os.Rename(dbPath, aside); rerr != nil {
		return nil, fmt.Errorf("storage: cannot move corrupt database aside: %w", rerr)
	}
	o.logger.Warn("scores database was corrupt, starting empty", "path", dbPath, "moved_to", aside, "err", err)
	return openStore(dbPath)
}

func openStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; SSH sessions share this store.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// isNotADatabase reports whether err is SQLITE_NOTADB.
func isNotADatabase(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code()&0xff == sqlite3.SQLITE_NOTADB
	}
	return false
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_rank ON scores(score DESC, id ASC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the ranked leaderboard: score descending, earlier
// insertions first among equal scores, at most MaxEntries rows.
func (s *Store) Load() ([]ScoreEntry, error) {
	return s.TopScores(MaxEntries)
}

// Save replaces the stored leaderboard with entries in a single
// transaction. Entries are ranked first, so row ids follow rank order.
func (s *Store) Save(entries []ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO scores (name, score, created_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range Rank(entries) {
		created := e.CreatedAt
		if created.IsZero() {
			created = time.Now()
		}
		if _, err := stmt.Exec(e.Name, e.Score, created.UTC().Format(timeLayout)); err != nil {
			return fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit scores: %w", err)
	}
	return nil
}

// AddScore inserts a score, prunes everything outside the top MaxEntries
// and returns the updated leaderboard.
func (s *Store) AddScore(name string, score int) ([]ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("INSERT INTO scores (name, score) VALUES (?, ?)", name, score); err != nil {
		return nil, fmt.Errorf("storage: cannot save score: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM scores WHERE id NOT IN (
			SELECT id FROM scores ORDER BY score DESC, id ASC LIMIT ?
		)`,
		MaxEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot prune scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("storage: cannot commit score: %w", err)
	}

	return s.Load()
}

// TopScores retrieves the top N scores in rank order.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = MaxEntries
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Clear deletes all scores.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
