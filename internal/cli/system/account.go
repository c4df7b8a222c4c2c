package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"fitbook/internal/auth"
	"fitbook/internal/cli"
	"fitbook/internal/validation"
)

// EnrollCmd stores an account password in the OS keyring so the keyring
// verifier can accept it at login.
type EnrollCmd struct {
	Email string `arg:"" help:"Account email."`
}

func (c *EnrollCmd) Run(ctx *cli.Context) error {
	if !validation.IsValidEmail(c.Email) {
		return fmt.Errorf("invalid email %q", c.Email)
	}

	var password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if !validation.IsValidPassword(s) {
						return fmt.Errorf("password must be at least 6 characters")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	kr := auth.NewKeyringVerifier()
	if err := kr.SetPassword(c.Email, password); err != nil {
		return err
	}

	fmt.Printf("Stored credentials for %s in the OS keyring.\n", c.Email)
	return nil
}

// RemoveCmd deletes an account password from the OS keyring
type RemoveCmd struct {
	Email string `arg:"" help:"Account email."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	kr := auth.NewKeyringVerifier()
	if err := kr.DeletePassword(c.Email); err != nil {
		return err
	}
	fmt.Printf("Removed credentials for %s from the OS keyring.\n", c.Email)
	return nil
}
