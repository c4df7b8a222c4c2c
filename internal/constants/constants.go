package constants

// SessionState represents the current screen of the TUI application
type SessionState int

const (
	AppName            = "fitbook"
	DefaultConfigPath  = "~/.config/fitbook/fitbook.json"
	DefaultKeyringUser = "account-password"
	Version            = "v0.3.0"

	// StorageKey is the single slot in on-device storage that holds the
	// serialized booking list.
	StorageKey = "@bookings"

	// DateFormat is the booking date layout (DD-MM-YYYY)
	DateFormat = "02-01-2006"

	// TimeFormat is the booking time layout (HH:MM AM/PM, 12-hour, zero-padded)
	TimeFormat = "03:04 PM"

	// Development account accepted by the static verifier. Not a security
	// mechanism; a real backend substitutes its own auth.Verifier.
	DevAccountEmail    = "user@example.com"
	DevAccountPassword = "1234567890"

	// MinPasswordLength is the minimum accepted password length
	MinPasswordLength = 6
)

// Session States
const (
	StateLogin SessionState = iota
	StateServices
	StateServiceDetail
	StateBookingForm
	StateBookings
	StateConfirmDelete
)
