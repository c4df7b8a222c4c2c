package storage

import "fitbook/internal/models"

// Provider is the persistence surface for the booking list. The whole list
// lives in a single named slot and every write replaces the slot's content.
// The list stays small: single user, local device, no cross-process access.
//
// All operations return explicit errors; callers choose whether to surface
// or log them.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Bookings
	SaveBookings([]models.Booking) error
	// LoadBookings returns the decoded booking list, or an empty list if the
	// slot has never been written.
	LoadBookings() ([]models.Booking, error)
	// DeleteBooking removes the entry with the given id using a
	// read-filter-write cycle. Deleting an absent id is a no-op.
	DeleteBooking(id string) error

	// Utils
	GetConfigPath() string
}
