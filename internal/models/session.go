package models

// Session represents the login state of the current user. Email is present
// iff the user is logged in.
type Session struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	Email      string `json:"email,omitempty"`
}
