package storage

import (
	"path/filepath"
	"reflect"
	"testing"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitbook.db")
	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := setupSQLiteStore(t)

	want := sampleBookings()
	if err := s.SaveBookings(want); err != nil {
		t.Fatalf("SaveBookings() failed: %v", err)
	}

	got, err := s.LoadBookings()
	if err != nil {
		t.Fatalf("LoadBookings() failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadBookings() = %+v, want %+v", got, want)
	}
}

func TestSQLiteStoreLoadBookingsAbsentSlot(t *testing.T) {
	s := setupSQLiteStore(t)

	got, err := s.LoadBookings()
	if err != nil {
		t.Fatalf("LoadBookings() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadBookings() on absent slot = %+v, want empty", got)
	}
}

func TestSQLiteStoreSaveOverwritesSlot(t *testing.T) {
	s := setupSQLiteStore(t)

	if err := s.SaveBookings(sampleBookings()); err != nil {
		t.Fatalf("SaveBookings() failed: %v", err)
	}
	want := sampleBookings()[:1]
	if err := s.SaveBookings(want); err != nil {
		t.Fatalf("second SaveBookings() failed: %v", err)
	}

	got, err := s.LoadBookings()
	if err != nil {
		t.Fatalf("LoadBookings() failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadBookings() = %+v, want %+v", got, want)
	}
}

func TestSQLiteStoreDeleteBookingIdempotent(t *testing.T) {
	s := setupSQLiteStore(t)
	if err := s.SaveBookings(sampleBookings()); err != nil {
		t.Fatalf("SaveBookings() failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.DeleteBooking("x2"); err != nil {
			t.Fatalf("DeleteBooking() #%d failed: %v", i+1, err)
		}
	}

	got, err := s.LoadBookings()
	if err != nil {
		t.Fatalf("LoadBookings() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "x1" {
		t.Errorf("after delete got %+v, want only x1", got)
	}
}
