package store

import (
	"sync"

	"fitbook/internal/models"
)

// SessionStore holds the login state. It records the outcome of a credential
// check but never performs one; verification lives behind auth.Verifier in
// the calling layer.
type SessionStore struct {
	mu      sync.RWMutex
	session models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Login marks the session logged in under the given email
func (s *SessionStore) Login(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{IsLoggedIn: true, Email: email}
}

// Logout resets the session to logged out. No screen exposes this today but
// the operation is part of the session contract.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{}
}

// Current returns the session snapshot
func (s *SessionStore) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// IsLoggedIn reports the login flag
func (s *SessionStore) IsLoggedIn() bool {
	return s.Current().IsLoggedIn
}
