package validation

import (
	"fmt"
	"strings"

	"fitbook/internal/constants"
	"fitbook/internal/models"
	"fitbook/internal/utils"
)

// IsValidEmail performs the same minimal check the login form applies:
// the address must contain an "@".
func IsValidEmail(email string) bool {
	return strings.Contains(email, "@")
}

// IsValidPassword checks the minimum password length
func IsValidPassword(password string) bool {
	return len(password) >= constants.MinPasswordLength
}

// ValidateLogin checks login form fields, returning a per-field error map.
// An empty map means the form is valid.
func ValidateLogin(email, password string) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !IsValidEmail(email) {
		errs["email"] = "Invalid email"
	}
	if password == "" {
		errs["password"] = "Password is required"
	} else if !IsValidPassword(password) {
		errs["password"] = fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength)
	}
	return errs
}

// ValidateBooking checks a booking before it is handed to the booking store
func ValidateBooking(b models.Booking) error {
	if strings.TrimSpace(b.ServiceID) == "" {
		return fmt.Errorf("service is required")
	}
	if strings.TrimSpace(b.Date) == "" {
		return fmt.Errorf("date is required")
	}
	if !utils.ValidateDateFormat(b.Date) {
		return fmt.Errorf("invalid date %q, use DD-MM-YYYY", b.Date)
	}
	if strings.TrimSpace(b.Time) == "" {
		return fmt.Errorf("time is required")
	}
	if !utils.ValidateTimeFormat(b.Time) {
		return fmt.Errorf("invalid time %q, use HH:MM AM/PM", b.Time)
	}
	return nil
}

// FilterServicesByName returns the services whose name contains the query,
// ignoring case. An empty query returns all services.
func FilterServicesByName(services []models.Service, query string) []models.Service {
	q := strings.ToLower(query)
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}
