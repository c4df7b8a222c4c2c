package cli

import (
	"fmt"

	"fitbook/internal/auth"
	"fitbook/internal/models"
	"fitbook/internal/storage"
	"fitbook/internal/store"
)

// Context is passed to every command by kong
type Context struct {
	Provider storage.Provider
	App      *store.Store
	Verifier auth.Verifier
}

// FormatBooking renders one booking for terminal output
func FormatBooking(b models.Booking) string {
	line := fmt.Sprintf("%s | %s at %s (ID: %s)", b.ServiceName, b.Date, b.Time, b.ID)
	if b.Notes != "" {
		line += "\n    notes: " + b.Notes
	}
	return line
}

// FormatService renders one catalog entry for terminal output
func FormatService(s models.Service) string {
	return fmt.Sprintf("[%s] %s | %s, ₹%.0f", s.ID, s.Name, s.Duration, s.Price)
}
