// Package storage provides a SQLite-backed journal of game notifications.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the event journal.
type Store struct {
	db *sql.DB
}

// EventRecord is one journaled notification.
type EventRecord struct {
	ID           int64
	SessionID    string
	GenerationID string
	Tick         uint64
	Kind         string
	Color        string
	Score        int
	Message      string
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			generation_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			message TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_events_generation ON events(generation_id, id);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
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

// SaveEvent appends a record to the journal.
// Returns the ID of the inserted record.
func (s *Store) SaveEvent(rec EventRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO events (session_id, generation_id, tick, kind, color, score, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.GenerationID, int64(rec.Tick), rec.Kind, rec.Color, rec.Score, rec.Message,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentEvents returns the newest records first.
func (s *Store) RecentEvents(limit int) ([]EventRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, generation_id, tick, kind, color, score, message, created_at
		 FROM events
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	return scanEvents(rows)
}

// GenerationEvents returns every record of one generation in the order they
// were written.
func (s *Store) GenerationEvents(generationID string) ([]EventRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, generation_id, tick, kind, color, score, message, created_at
		 FROM events
		 WHERE generation_id = ?
		 ORDER BY id ASC`,
		generationID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query generation events: %w", err)
	}
	return scanEvents(rows)
}

// OutcomeCounts returns how many generations ended with each terminal kind.
func (s *Store) OutcomeCounts() (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT kind, COUNT(*) FROM events
		 WHERE kind IN ('won', 'lost')
		 GROUP BY kind`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}

func scanEvents(rows *sql.Rows) ([]EventRecord, error) {
	defer rows.Close()

	var records []EventRecord
	for rows.Next() {
		var r EventRecord
		var tick int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.GenerationID, &tick, &r.Kind, &r.Color, &r.Score, &r.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Tick = uint64(tick)

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
