package store

import (
	"context"
	"errors"
	"sync"

	"fitbook/internal/models"
	"fitbook/internal/storage"
)

// ErrClosed is returned for operations submitted after Close
var ErrClosed = errors.New("booking store closed")

// BookingStore owns the in-memory booking list and keeps it converged with
// the persisted slot. Insertion order is display order.
//
// Every operation that touches the slot runs on a single-writer queue: one
// task in flight at a time, started in submission order. Two rapid adds
// therefore both land in storage instead of the second overwriting the first
// with a stale snapshot.
type BookingStore struct {
	provider storage.Provider

	mu      sync.Mutex
	list    []models.Booking
	loading bool

	tasks chan task
	done  chan struct{}
	once  sync.Once
}

type task struct {
	fn  func() error
	res chan error
}

func NewBookingStore(provider storage.Provider) *BookingStore {
	s := &BookingStore{
		provider: provider,
		list:     []models.Booking{},
		tasks:    make(chan task),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *BookingStore) run() {
	for {
		select {
		case t := <-s.tasks:
			t.res <- t.fn()
		case <-s.done:
			return
		}
	}
}

// Close stops the writer queue. Operations submitted after Close return
// context or shutdown errors.
func (s *BookingStore) Close() {
	s.once.Do(func() { close(s.done) })
}

// submit runs fn on the writer queue and waits for its result. Once a task
// has started it is not cancellable; ctx only bounds the wait.
func (s *BookingStore) submit(ctx context.Context, fn func() error) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}

	t := task{fn: fn, res: make(chan error, 1)}
	select {
	case s.tasks <- t:
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-t.res:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List returns a copy of the in-memory booking list
func (s *BookingStore) List() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.list))
	copy(out, s.list)
	return out
}

// Len returns the in-memory booking count
func (s *BookingStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}

// Loading reports whether a LoadStored is in flight
func (s *BookingStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LoadStored hydrates the in-memory list from the persisted slot. This is a
// full replace: in-memory entries that were never persisted are dropped.
func (s *BookingStore) LoadStored(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	err := s.submit(ctx, func() error {
		loaded, err := s.provider.LoadBookings()
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.list = loaded
		s.mu.Unlock()
		return nil
	})

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return s.List(), nil
}

// AddAndSave persists the current list plus the new booking, then appends it
// to the in-memory list. On error neither state changes.
func (s *BookingStore) AddAndSave(ctx context.Context, booking models.Booking) error {
	return s.submit(ctx, func() error {
		s.mu.Lock()
		next := make([]models.Booking, len(s.list), len(s.list)+1)
		copy(next, s.list)
		s.mu.Unlock()
		next = append(next, booking)

		if err := s.provider.SaveBookings(next); err != nil {
			return err
		}

		s.mu.Lock()
		s.list = next
		s.mu.Unlock()
		return nil
	})
}

// DeleteAndSave persists the current list minus the entry with the given id,
// then removes it from the in-memory list. Deleting an absent id is a no-op.
func (s *BookingStore) DeleteAndSave(ctx context.Context, id string) error {
	return s.submit(ctx, func() error {
		s.mu.Lock()
		next := make([]models.Booking, 0, len(s.list))
		for _, b := range s.list {
			if b.ID != id {
				next = append(next, b)
			}
		}
		s.mu.Unlock()

		if err := s.provider.SaveBookings(next); err != nil {
			return err
		}

		s.mu.Lock()
		s.list = next
		s.mu.Unlock()
		return nil
	})
}
