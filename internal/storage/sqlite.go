// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished (or abandoned) stage attempt.
type Run struct {
	ID        int64
	GameID    string
	Score     int
	Kills     int
	Shots     int
	Ticks     int
	Cleared   bool
	CreatedAt time.Time
}

// Accuracy returns kills per shot, or 0 when nothing was fired.
func (r Run) Accuracy() float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Kills) / float64(r.Shots)
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
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

// SaveRun records a run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, score, kills, shots, ticks, cleared)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Score, r.Kills, r.Shots, r.Ticks, r.Cleared,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs for the given game, highest score
// first. Ties go to the faster run.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, kills, shots, ticks, cleared, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, ticks ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Kills, &r.Shots, &r.Ticks, &r.Cleared, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for a game.
type Stats struct {
	GameID       string
	Runs         int
	Clears       int
	HighScore    int
	AvgScore     float64
	TotalKills   int64
	TotalShots   int64
	FastestTicks int // Fewest ticks of a cleared run, 0 if none
	LastPlayed   time.Time
}

// Accuracy returns overall kills per shot.
func (s Stats) Accuracy() float64 {
	if s.TotalShots == 0 {
		return 0
	}
	return float64(s.TotalKills) / float64(s.TotalShots)
}

// GameStats retrieves aggregated statistics for a game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var fastest sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(cleared), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(SUM(kills), 0),
		        COALESCE(SUM(shots), 0),
		        MIN(CASE WHEN cleared THEN ticks END),
		        MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.Clears, &stats.HighScore, &stats.AvgScore,
		&stats.TotalKills, &stats.TotalShots, &fastest, &lastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	if fastest.Valid {
		stats.FastestTicks = int(fastest.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime converts a scanned DATETIME column, which the driver returns
// either as time.Time or as text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
