// Package storage keeps the round history of the running process in an
// in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Nothing is written to disk; the history is gone when the store is closed.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/carrot-field/internal/game"
)

// Store manages the in-memory database connection for round history.
type Store struct {
	db *sql.DB
}

// Round represents a single finished round.
type Round struct {
	ID        int64
	Outcome   string // "win", "lose" or "stopped"
	Score     int
	Carrots   int
	Elapsed   int // Seconds played
	CreatedAt time.Time
}

// Summary contains aggregated statistics for the current run.
type Summary struct {
	Rounds      int
	Wins        int
	Losses      int
	Stopped     int
	BestWinSecs int // Fastest win in seconds, 0 if there is none
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			carrots INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_outcome ON rounds(outcome, elapsed_secs);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r game.RoundEnded) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (outcome, score, carrots, elapsed_secs) VALUES (?, ?, ?, ?)",
		r.Outcome.String(), r.Score, r.Carrots, r.Elapsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, score, carrots, elapsed_secs, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Outcome, &r.Score, &r.Carrots, &r.Elapsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Summary aggregates every round recorded so far.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'win'), 0),
		        COALESCE(SUM(outcome = 'lose'), 0),
		        COALESCE(SUM(outcome = 'stopped'), 0),
		        MIN(CASE WHEN outcome = 'win' THEN elapsed_secs END)
		 FROM rounds`,
	).Scan(&sum.Rounds, &sum.Wins, &sum.Losses, &sum.Stopped, &best)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize rounds: %w", err)
	}

	if best.Valid {
		sum.BestWinSecs = int(best.Int64)
	}

	return sum, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
