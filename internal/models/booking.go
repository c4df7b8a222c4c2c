package models

// Booking represents one reservation made by the user. ServiceName is a
// denormalized copy taken at booking time so the booking survives catalog
// changes; it is never re-synced.
type Booking struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"` // DD-MM-YYYY
	Time        string `json:"time"` // HH:MM AM/PM
	Notes       string `json:"notes,omitempty"`
}
