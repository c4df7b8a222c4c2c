// Package auth provides the credential verification capability consumed by
// the login flow. The session store never verifies credentials itself; a
// Verifier is injected so a real backend can be substituted without touching
// session state.
package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"fitbook/internal/constants"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match a
	// known account
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Verifier checks a credential pair
type Verifier interface {
	Verify(email, password string) error
}

// StaticVerifier accepts exactly one account. This is the development stub,
// not a security mechanism.
type StaticVerifier struct {
	Email    string
	Password string
}

// NewStaticVerifier returns a verifier for the built-in development account
func NewStaticVerifier() *StaticVerifier {
	return &StaticVerifier{
		Email:    constants.DevAccountEmail,
		Password: constants.DevAccountPassword,
	}
}

func (v *StaticVerifier) Verify(email, password string) error {
	if email != v.Email || password != v.Password {
		return ErrInvalidCredentials
	}
	return nil
}

// KeyringVerifier checks the password against one stored in the OS keyring,
// keyed by email. Accounts are enrolled with SetPassword.
type KeyringVerifier struct {
	service string
}

func NewKeyringVerifier() *KeyringVerifier {
	return &KeyringVerifier{service: constants.AppName}
}

func (v *KeyringVerifier) Verify(email, password string) error {
	stored, err := keyring.Get(v.service, email)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	if stored != password {
		return ErrInvalidCredentials
	}
	return nil
}

// SetPassword enrolls an account in the OS keyring
func (v *KeyringVerifier) SetPassword(email, password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(v.service, email, password); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeletePassword removes an account from the OS keyring
func (v *KeyringVerifier) DeletePassword(email string) error {
	if err := keyring.Delete(v.service, email); err != nil {
		if err == keyring.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// KeyringAvailable reports whether the OS keyring responds. Best-effort; a
// missing test entry still means the keyring itself works.
func KeyringAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
