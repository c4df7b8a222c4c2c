package models

// Service represents a bookable catalog entry
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Duration    string  `json:"duration"` // display string, e.g. "60 mins"
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}
