package auth

import (
	"testing"

	"fitbook/internal/constants"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "dev account accepted",
			email:    constants.DevAccountEmail,
			password: constants.DevAccountPassword,
			wantErr:  false,
		},
		{
			name:     "wrong password rejected",
			email:    constants.DevAccountEmail,
			password: "wrong-password",
			wantErr:  true,
		},
		{
			name:     "unknown email rejected",
			email:    "someone@else.com",
			password: constants.DevAccountPassword,
			wantErr:  true,
		},
		{
			name:     "empty credentials rejected",
			email:    "",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Verify(tt.email, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidCredentials {
				t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
