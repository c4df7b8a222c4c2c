package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"fitbook/internal/catalog"
	"fitbook/internal/models"
	"fitbook/internal/validation"
)

// ErrServiceNotFound is returned when a service id is not in the catalog.
// Callers render it as a "not found" state rather than treating it as
// exceptional.
var ErrServiceNotFound = errors.New("service not found")

// refreshLatency stands in for a future network fetch; the refresh path
// carries no real I/O today.
const refreshLatency = 800 * time.Millisecond

// ServiceStore owns the service catalog. Entries are populated at
// initialization or wholesale replaced; never individually mutated.
type ServiceStore struct {
	mu   sync.RWMutex
	list []models.Service
}

func NewServiceStore() *ServiceStore {
	s := &ServiceStore{}
	s.Initialize()
	return s
}

// Initialize populates the store with the fixed reference catalog
func (s *ServiceStore) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = catalog.Services()
}

// ReplaceAll bulk-overwrites the catalog
func (s *ServiceStore) ReplaceAll(services []models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = make([]models.Service, len(services))
	copy(s.list, services)
}

// All returns a copy of the catalog
func (s *ServiceStore) All() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, len(s.list))
	copy(out, s.list)
	return out
}

// Get looks a service up by id
func (s *ServiceStore) Get(id string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.list {
		if svc.ID == id {
			return svc, nil
		}
	}
	return models.Service{}, ErrServiceNotFound
}

// Search returns services whose name contains the query, ignoring case.
// An empty query returns the whole catalog.
func (s *ServiceStore) Search(query string) []models.Service {
	return validation.FilterServicesByName(s.All(), query)
}

// Refresh simulates a catalog fetch: it waits the simulated network latency
// and then replaces the catalog with the reference list.
func (s *ServiceStore) Refresh(ctx context.Context) ([]models.Service, error) {
	select {
	case <-time.After(refreshLatency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	s.ReplaceAll(catalog.Services())
	return s.All(), nil
}
