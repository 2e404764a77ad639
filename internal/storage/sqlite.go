// Package storage provides SQLite-based persistence for match results and
// round replays. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// MatchEntry is one persisted match result.
type MatchEntry struct {
	ID           int64
	Mode         string
	Difficulty   string
	Rounds       int
	Score1       int
	Score2       int
	Winner       string
	DurationSecs float64
	CreatedAt    time.Time
}

// ReplayEntry describes one stored round replay without its frames.
type ReplayEntry struct {
	ID        int64
	MatchID   int64
	Round     int
	Frames    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			rounds INTEGER NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
		CREATE INDEX IF NOT EXISTS idx_matches_rank ON matches(score1 DESC, score2 DESC, duration_secs ASC);

		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id INTEGER NOT NULL REFERENCES matches(id),
			round INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_match ON replays(match_id);

		CREATE TABLE IF NOT EXISTS replay_frames (
			replay_id INTEGER NOT NULL REFERENCES replays(id),
			tick INTEGER NOT NULL,
			p1x INTEGER NOT NULL,
			p1y INTEGER NOT NULL,
			p2x INTEGER NOT NULL,
			p2y INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_replay_frames_replay ON replay_frames(replay_id, tick);
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

// SaveMatch records a completed match. Returns the ID of the inserted row.
func (s *Store) SaveMatch(sum arena.MatchSummary, difficulty string) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (mode, difficulty, rounds, score1, score2, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sum.Mode.String(), difficulty, sum.Rounds, sum.Score1, sum.Score2,
		sum.WinnerName, sum.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopMatches retrieves the top N matches ranked by player 1 score descending,
// then player 2 score descending, then shortest duration first.
func (s *Store) TopMatches(limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, difficulty, rounds, score1, score2, winner, duration_secs, created_at
		 FROM matches
		 ORDER BY score1 DESC, score2 DESC, duration_secs ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var entries []MatchEntry
	for rows.Next() {
		var e MatchEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Difficulty, &e.Rounds,
			&e.Score1, &e.Score2, &e.Winner, &e.DurationSecs, &createdAt); err != nil {
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

// ClearMatches deletes all persisted matches, replays, and frames.
func (s *Store) ClearMatches() error {
	for _, stmt := range []string{
		"DELETE FROM replay_frames",
		"DELETE FROM replays",
		"DELETE FROM matches",
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("storage: cannot clear matches: %w", err)
		}
	}
	return nil
}

// SaveReplay stores one round's frame log under a match, in a single
// transaction so a replay is never half-written.
func (s *Store) SaveReplay(matchID int64, replay arena.RoundReplay) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"INSERT INTO replays (match_id, round) VALUES (?, ?)",
		matchID, replay.Round,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}
	replayID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO replay_frames (replay_id, tick, p1x, p1y, p2x, p2y) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range replay.Frames {
		if _, err := stmt.Exec(replayID, f.Tick, f.P1.X, f.P1.Y, f.P2.X, f.P2.Y); err != nil {
			return 0, fmt.Errorf("storage: cannot save frame: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return replayID, nil
}

// ListReplays retrieves stored replay metadata, newest first.
func (s *Store) ListReplays(limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.match_id, r.round, COUNT(f.replay_id), r.created_at
		 FROM replays r
		 LEFT JOIN replay_frames f ON f.replay_id = r.id
		 GROUP BY r.id
		 ORDER BY r.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var e ReplayEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.MatchID, &e.Round, &e.Frames, &createdAt); err != nil {
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

// ReplayFrames retrieves the full frame log of a stored replay in tick order.
func (s *Store) ReplayFrames(replayID int64) ([]arena.ReplayFrame, error) {
	rows, err := s.db.Query(
		`SELECT tick, p1x, p1y, p2x, p2y
		 FROM replay_frames
		 WHERE replay_id = ?
		 ORDER BY tick ASC`,
		replayID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	var frames []arena.ReplayFrame
	for rows.Next() {
		var f arena.ReplayFrame
		if err := rows.Scan(&f.Tick, &f.P1.X, &f.P1.Y, &f.P2.X, &f.P2.Y); err != nil {
			return nil, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		frames = append(frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return frames, nil
}

// parseTime handles the driver returning DATETIME as either time.Time or a
// plain string.
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
