package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"fitbook/internal/utils"
	"fitbook/internal/validation"
)

// LoginFormModel holds login form field values
type LoginFormModel struct {
	Email    string
	Password string
}

// BookingFormModel holds booking form field values. Values survive a failed
// submit so the user can resubmit without retyping.
type BookingFormModel struct {
	Date  string
	Time  string
	Notes string
}

// NewLoginForm creates the login form
func NewLoginForm(fm *LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("Enter your email").
				Value(&fm.Email).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("email is required")
					}
					if !validation.IsValidEmail(s) {
						return fmt.Errorf("invalid email")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				Placeholder("Enter your password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password is required")
					}
					if !validation.IsValidPassword(s) {
						return fmt.Errorf("password must be at least 6 characters")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewBookingForm creates the booking form for a selected service
func NewBookingForm(fm *BookingFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (DD-MM-YYYY)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("date is required")
					}
					if !utils.ValidateDateFormat(s) {
						return fmt.Errorf("invalid date, use DD-MM-YYYY")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time (HH:MM AM/PM)").
				Value(&fm.Time).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("time is required")
					}
					if !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("invalid time, use HH:MM AM/PM")
					}
					return nil
				}),
			huh.NewInput().
				Title("Notes (optional)").
				Placeholder("Add notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}
