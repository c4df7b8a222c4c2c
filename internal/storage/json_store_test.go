package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"fitbook/internal/constants"
	"fitbook/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitbook.json")
	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return s
}

func sampleBookings() []models.Booking {
	return []models.Booking{
		{
			ID:          "x1",
			ServiceID:   "2",
			ServiceName: "Personal Training Session",
			Date:        "15-03-2025",
			Time:        "10:00 AM",
		},
		{
			ID:          "x2",
			ServiceID:   "4",
			ServiceName: "Yoga & Meditation Session",
			Date:        "16-03-2025",
			Time:        "07:30 PM",
			Notes:       "bring a mat",
		},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		bookings []models.Booking
	}{
		{name: "empty list", bookings: []models.Booking{}},
		{name: "single booking", bookings: sampleBookings()[:1]},
		{name: "multiple bookings", bookings: sampleBookings()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupJSONStore(t)
			if err := s.SaveBookings(tt.bookings); err != nil {
				t.Fatalf("SaveBookings() failed: %v", err)
			}

			got, err := s.LoadBookings()
			if err != nil {
				t.Fatalf("LoadBookings() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.bookings) {
				t.Errorf("LoadBookings() = %+v, want %+v", got, tt.bookings)
			}
		})
	}
}

func TestJSONStoreRoundTripAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitbook.json")

	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := sampleBookings()
	if err := s.SaveBookings(want); err != nil {
		t.Fatalf("SaveBookings() failed: %v", err)
	}

	// A fresh store over the same file must decode the same list
	s2 := NewJSONStore(path)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load() of existing file failed: %v", err)
	}
	got, err := s2.LoadBookings()
	if err != nil {
		t.Fatalf("LoadBookings() failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadBookings() after reload = %+v, want %+v", got, want)
	}
}

func TestJSONStoreLoadBookingsAbsentSlot(t *testing.T) {
	s := setupJSONStore(t)

	got, err := s.LoadBookings()
	if err != nil {
		t.Fatalf("LoadBookings() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadBookings() on absent slot = %+v, want empty", got)
	}
}

func TestJSONStoreDeleteBooking(t *testing.T) {
	s := setupJSONStore(t)
	if err := s.SaveBookings(sampleBookings()); err != nil {
		t.Fatalf("SaveBookings() failed: %v", err)
	}

	if err := s.DeleteBooking("x1"); err != nil {
		t.Fatalf("DeleteBooking() failed: %v", err)
	}
	got, err := s.LoadBookings()
	if err != nil {
		t.Fatalf("LoadBookings() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "x2" {
		t.Errorf("after delete got %+v, want only x2", got)
	}

	// Idempotent: deleting the same id again changes nothing
	if err := s.DeleteBooking("x1"); err != nil {
		t.Fatalf("second DeleteBooking() failed: %v", err)
	}
	again, err := s.LoadBookings()
	if err != nil {
		t.Fatalf("LoadBookings() failed: %v", err)
	}
	if !reflect.DeepEqual(again, got) {
		t.Errorf("second delete changed list: %+v != %+v", again, got)
	}
}

func TestJSONStoreDeleteAbsentIDIsNoop(t *testing.T) {
	s := setupJSONStore(t)
	want := sampleBookings()
	if err := s.SaveBookings(want); err != nil {
		t.Fatalf("SaveBookings() failed: %v", err)
	}

	if err := s.DeleteBooking("no-such-id"); err != nil {
		t.Fatalf("DeleteBooking() failed: %v", err)
	}
	got, err := s.LoadBookings()
	if err != nil {
		t.Fatalf("LoadBookings() failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("delete of absent id changed list: %+v != %+v", got, want)
	}
}

func TestJSONStoreDecodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitbook.json")
	if err := os.WriteFile(path, []byte(`{"version":1,"slots":{"`+constants.StorageKey+`":"not a list"}}`), 0600); err != nil {
		t.Fatalf("failed to seed corrupt file: %v", err)
	}

	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Corruption surfaces as an error instead of masquerading as "no data"
	if _, err := s.LoadBookings(); err == nil {
		t.Error("LoadBookings() on corrupt slot = nil error, want decode error")
	}
}

func TestJSONStoreFieldNamesRoundTripExactly(t *testing.T) {
	s := setupJSONStore(t)
	if err := s.SaveBookings(sampleBookings()[:1]); err != nil {
		t.Fatalf("SaveBookings() failed: %v", err)
	}

	data, err := os.ReadFile(s.GetConfigPath())
	if err != nil {
		t.Fatalf("failed to read storage file: %v", err)
	}

	for _, field := range []string{`"id"`, `"serviceId"`, `"serviceName"`, `"date"`, `"time"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("persisted blob missing field %s", field)
		}
	}
	if !strings.Contains(string(data), constants.StorageKey) {
		t.Errorf("persisted file missing slot key %q", constants.StorageKey)
	}
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitbook.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("Init() on existing file = nil error, want already-initialized error")
	}
}
