// Package cache persists fetched forecast payloads in a local SQLite
// database so the dashboard keeps working when the CWA API is unreachable.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoPayload is returned when no cached payload exists for a dataset
var ErrNoPayload = errors.New("no cached payload for dataset")

// Store is an append-only log of fetched payloads keyed by dataset id.
// Rows are never updated or deleted; the read path takes the newest row.
type Store struct {
	dbPath string
}

// NewStore creates a store backed by the SQLite database at dbPath
func NewStore(dbPath string) *Store {
	return &Store{dbPath: dbPath}
}

// EnsureSchema creates the forecast_cache table if needed. Safe to call
// before every operation.
func (s *Store) EnsureSchema() error {
	if dir := filepath.Dir(s.dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS forecast_cache (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dataset TEXT NOT NULL,
			payload TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("creating forecast_cache table: %w", err)
	}

	return nil
}

// SavePayload appends a fetched payload for a dataset
func (s *Store) SavePayload(dataset string, payload []byte, fetchedAt time.Time) error {
	if err := s.EnsureSchema(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(
		"INSERT INTO forecast_cache (dataset, payload, fetched_at) VALUES (?, ?, ?)",
		dataset,
		string(payload),
		fetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving payload: %w", err)
	}

	return nil
}

// LatestPayload returns the most recently written payload for a dataset,
// or ErrNoPayload when the dataset has never been cached.
func (s *Store) LatestPayload(dataset string) ([]byte, error) {
	if err := s.EnsureSchema(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var payload string
	err = db.QueryRow(
		"SELECT payload FROM forecast_cache WHERE dataset = ? ORDER BY id DESC LIMIT 1",
		dataset,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNoPayload
	}
	if err != nil {
		return nil, fmt.Errorf("querying cached payload: %w", err)
	}

	return []byte(payload), nil
}
