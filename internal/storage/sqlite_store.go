package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"fitbook/internal/constants"
	"fitbook/internal/models"
)

// SQLiteStore keeps the same single-slot layout as the JSON store, backed by
// a key-value table. The booking list is still one blob per slot; SQLite only
// buys durability on write, not per-entity records.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent, so first runs work without an
	// explicit init.
	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	return err
}

func (s *SQLiteStore) SaveBookings(bookings []models.Booking) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	blob, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, constants.StorageKey, string(blob))
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *SQLiteStore) LoadBookings() ([]models.Booking, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var blob string
	row := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", constants.StorageKey)
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return []models.Booking{}, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal([]byte(blob), &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	return bookings, nil
}

func (s *SQLiteStore) DeleteBooking(id string) error {
	bookings, err := s.LoadBookings()
	if err != nil {
		return err
	}

	updated := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			updated = append(updated, b)
		}
	}

	return s.SaveBookings(updated)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
