package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fitbook/internal/constants"
	"fitbook/internal/models"
)

// slotFile is the on-disk shape: a small map of named slots to raw JSON
// blobs. Only the "@bookings" slot is used today.
type slotFile struct {
	Version int                        `json:"version"`
	Slots   map[string]json.RawMessage `json:"slots"`
}

type JSONStore struct {
	path string
	file *slotFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &slotFile{
		Version: 1,
		Slots:   make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// An absent file behaves like an empty slot map so first runs
			// work without an explicit init.
			s.file = &slotFile{Version: 1, Slots: make(map[string]json.RawMessage)}
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &slotFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.file.Slots == nil {
		s.file.Slots = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SaveBookings(bookings []models.Booking) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	blob, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}

	s.file.Slots[constants.StorageKey] = blob
	return s.save()
}

func (s *JSONStore) LoadBookings() ([]models.Booking, error) {
	if s.file == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	blob, ok := s.file.Slots[constants.StorageKey]
	if !ok {
		return []models.Booking{}, nil
	}

	var bookings []models.Booking
	if err := json.Unmarshal(blob, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	return bookings, nil
}

func (s *JSONStore) DeleteBooking(id string) error {
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

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
