// Package history keeps a local index of generated highlight pages.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run records one completed generation.
type Run struct {
	ID         string
	SourceURL  string
	Transcript string
	Keywords   string
	CardCount  int
	OutputPath string
	CreatedAt  time.Time
}

// Store persists runs in a SQLite database.
type Store struct {
	db *sql.DB
}

// created_at is REAL unix seconds; written via UnixMilli to keep
// sub-second ordering between runs recorded in the same second.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source_url TEXT NOT NULL,
	transcript TEXT NOT NULL,
	keywords TEXT NOT NULL DEFAULT '',
	card_count INTEGER NOT NULL,
	output_path TEXT NOT NULL,
	created_at REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

// Open opens (creating if needed) the run database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer at a time keeps SQLite happy and makes :memory: share a
	// single database across the pool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a completed run and returns its generated ID.
func (s *Store) Record(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO runs (id, source_url, transcript, keywords, card_count, output_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.SourceURL, run.Transcript, run.Keywords, run.CardCount, run.OutputPath,
		float64(run.CreatedAt.UnixMilli())/1000.0)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return run.ID, nil
}

// Recent returns the latest runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT id, source_url, transcript, keywords, card_count, output_path, created_at
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt float64
		if err := rows.Scan(&r.ID, &r.SourceURL, &r.Transcript, &r.Keywords,
			&r.CardCount, &r.OutputPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = time.UnixMilli(int64(createdAt * 1000))
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
