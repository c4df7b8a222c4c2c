// Package store holds the application state: the booking list, the service
// catalog and the login session. The Store is constructed explicitly at
// startup and passed to the presentation layer; there is no process-wide
// singleton, so tests build a fresh Store each.
package store

import "fitbook/internal/storage"

// Store aggregates the state slices
type Store struct {
	Bookings *BookingStore
	Services *ServiceStore
	Session  *SessionStore
}

// New builds a Store on top of a loaded storage provider
func New(provider storage.Provider) *Store {
	return &Store{
		Bookings: NewBookingStore(provider),
		Services: NewServiceStore(),
		Session:  NewSessionStore(),
	}
}

// Close stops the booking writer queue
func (s *Store) Close() {
	s.Bookings.Close()
}
