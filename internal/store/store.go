// Package store handles SQLite persistence for finished runs.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Score is one finished run on the leaderboard.
type Score struct {
	ID       int64
	PlayedAt time.Time
	Score    int
	Waves    int
	WPM      int
	Accuracy int
	Seed     int64
}

// Store wraps SQLite access for the leaderboard.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY,
			played_at TEXT NOT NULL,
			score INTEGER NOT NULL,
			waves INTEGER NOT NULL,
			wpm INTEGER NOT NULL,
			accuracy INTEGER NOT NULL,
			seed INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertScore stores one finished run.
func (s *Store) InsertScore(ctx context.Context, sc Score) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (played_at, score, waves, wpm, accuracy, seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sc.PlayedAt.Format(time.RFC3339Nano),
		sc.Score,
		sc.Waves,
		sc.WPM,
		sc.Accuracy,
		sc.Seed,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// TopScores returns the best runs ordered by score, most recent first on ties.
func (s *Store) TopScores(ctx context.Context, limit int) ([]Score, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, played_at, score, waves, wpm, accuracy, seed
		 FROM scores
		 ORDER BY score DESC, played_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []Score
	for rows.Next() {
		var sc Score
		var playedAt string
		if err := rows.Scan(&sc.ID, &playedAt, &sc.Score, &sc.Waves, &sc.WPM, &sc.Accuracy, &sc.Seed); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, playedAt)
		if err != nil {
			return nil, err
		}
		sc.PlayedAt = parsed
		result = append(result, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
