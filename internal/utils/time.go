package utils

import (
	"fmt"
	"time"

	"fitbook/internal/constants"
)

// bookingZone is the fixed UTC+5:30 offset applied to the device clock when
// formatting booking dates and times, regardless of the device's actual
// timezone.
var bookingZone = time.FixedZone("IST", 5*3600+30*60)

// InBookingZone converts a moment to the fixed booking offset
func InBookingZone(t time.Time) time.Time {
	return t.In(bookingZone)
}

// FormatBookingDate formats a moment as a booking date string (DD-MM-YYYY)
// in the fixed booking zone.
func FormatBookingDate(t time.Time) string {
	return InBookingZone(t).Format(constants.DateFormat)
}

// FormatBookingTime formats a moment as a booking time string (HH:MM AM/PM)
// in the fixed booking zone.
func FormatBookingTime(t time.Time) string {
	return InBookingZone(t).Format(constants.TimeFormat)
}

// ParseBookingDate parses a booking date string (DD-MM-YYYY)
func ParseBookingDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, bookingZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use DD-MM-YYYY: %w", err)
	}
	return t, nil
}

// ParseBookingTime parses a booking time string (HH:MM AM/PM)
func ParseBookingTime(timeStr string) (time.Time, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, use HH:MM AM/PM: %w", err)
	}
	return t, nil
}

// ValidateDateFormat checks if the string matches the booking date layout
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseBookingDate(dateStr)
	return err == nil
}

// ValidateTimeFormat checks if the string matches the booking time layout
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseBookingTime(timeStr)
	return err == nil
}
