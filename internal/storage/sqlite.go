// Package storage keeps the round log of the current run in SQLite.
// The database lives in memory and disappears with the process; nothing
// is written to disk. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/swipey/internal/core"
)

// Store manages the in-memory round log.
type Store struct {
	db    *sql.DB
	runID string
}

// RoundEntry is one completed round.
type RoundEntry struct {
	ID         int64
	RunID      string
	Level      int
	Score      int
	Collected  int
	Crashes    int
	Strength   int
	Focus      int
	Smoothness int
	Mode       string
	CreatedAt  time.Time
}

// Open creates an empty in-memory database and starts a new run.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, runID: uuid.NewString()}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			collected INTEGER NOT NULL DEFAULT 0,
			crashes INTEGER NOT NULL DEFAULT 0,
			strength INTEGER NOT NULL,
			focus INTEGER NOT NULL,
			smoothness INTEGER NOT NULL,
			mode TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_run ON rounds(run_id, level);
			`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RunID returns the identifier of the current run.
func (s *Store) RunID() string { return s.runID }

// NewRun starts a fresh run id; earlier rounds stay queryable by their id.
func (s *Store) NewRun() string {
	s.runID = uuid.NewString()
	return s.runID
}

// SaveRound records a completed round for the current run.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r core.RoundSummary) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (run_id, level, score, collected, crashes, strength, focus, smoothness, mode, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.runID, r.Level, r.Score, r.Collected, r.Crashes,
		r.Strength, r.Focus, r.Smoothness, r.Mode,
		time.Now().UTC().Format(time.RFC3339Nano),
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

const roundColumns = `id, run_id, level, score, collected, crashes, strength, focus, smoothness, mode, created_at`

// Rounds returns every round of a run in level order.
func (s *Store) Rounds(runID string) ([]RoundEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE run_id = ?
		 ORDER BY level ASC, id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		e, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestRound returns the round with the best net result (collected minus
// crashes) in a run, earliest first on ties. Score is the running total,
// so it cannot rank rounds by itself.
// Returns nil if the run has no rounds.
func (s *Store) BestRound(runID string) (*RoundEntry, error) {
	row := s.db.QueryRow(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE run_id = ?
		 ORDER BY collected - crashes DESC, level ASC
		 LIMIT 1`,
		runID,
	)

	e, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRound(sc scanner) (RoundEntry, error) {
	var e RoundEntry
	var createdAt string
	err := sc.Scan(
		&e.ID, &e.RunID, &e.Level, &e.Score, &e.Collected, &e.Crashes,
		&e.Strength, &e.Focus, &e.Smoothness, &e.Mode, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		e.CreatedAt = parsed
	}
	return e, nil
}
