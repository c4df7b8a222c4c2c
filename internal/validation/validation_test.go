package validation

import (
	"testing"

	"fitbook/internal/models"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"a@b", true},
		{"not-an-email", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.in); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1234567890", true},
		{"123456", true},
		{"12345", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidPassword(tt.in); got != tt.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		wantFields []string
	}{
		{name: "valid", email: "user@example.com", password: "1234567890"},
		{name: "missing email", email: "", password: "1234567890", wantFields: []string{"email"}},
		{name: "bad email", email: "nope", password: "1234567890", wantFields: []string{"email"}},
		{name: "short password", email: "user@example.com", password: "123", wantFields: []string{"password"}},
		{name: "both invalid", email: "", password: "", wantFields: []string{"email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLogin(tt.email, tt.password)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("ValidateLogin() = %v, want errors on %v", errs, tt.wantFields)
			}
			for _, field := range tt.wantFields {
				if errs[field] == "" {
					t.Errorf("ValidateLogin() missing error for field %q: %v", field, errs)
				}
			}
		})
	}
}

func TestValidateBooking(t *testing.T) {
	valid := models.Booking{
		ID:          "x1",
		ServiceID:   "2",
		ServiceName: "Personal Training Session",
		Date:        "15-03-2025",
		Time:        "10:00 AM",
	}

	tests := []struct {
		name    string
		mutate  func(*models.Booking)
		wantErr bool
	}{
		{name: "valid booking", mutate: func(b *models.Booking) {}},
		{name: "valid with notes", mutate: func(b *models.Booking) { b.Notes = "bring shoes" }},
		{name: "missing service", mutate: func(b *models.Booking) { b.ServiceID = "" }, wantErr: true},
		{name: "missing date", mutate: func(b *models.Booking) { b.Date = "" }, wantErr: true},
		{name: "bad date layout", mutate: func(b *models.Booking) { b.Date = "2025-03-15" }, wantErr: true},
		{name: "missing time", mutate: func(b *models.Booking) { b.Time = "" }, wantErr: true},
		{name: "bad time layout", mutate: func(b *models.Booking) { b.Time = "22:00" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			err := ValidateBooking(b)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBooking() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFilterServicesByName(t *testing.T) {
	services := []models.Service{
		{ID: "1", Name: "Gym Membership Consultation"},
		{ID: "2", Name: "Personal Training Session"},
		{ID: "3", Name: "Yoga & Meditation Session"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns all", query: "", wantIDs: []string{"1", "2", "3"}},
		{name: "case insensitive", query: "SESSION", wantIDs: []string{"2", "3"}},
		{name: "substring", query: "yoga", wantIDs: []string{"3"}},
		{name: "no match", query: "swimming", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterServicesByName(services, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FilterServicesByName(%q) returned %d services, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}
