package store

import "testing"

func TestSessionLifecycle(t *testing.T) {
	s := NewSessionStore()

	if s.IsLoggedIn() {
		t.Fatal("new session is logged in, want logged out")
	}
	if got := s.Current().Email; got != "" {
		t.Fatalf("new session email = %q, want empty", got)
	}

	s.Login("user@example.com")
	if !s.IsLoggedIn() {
		t.Error("IsLoggedIn() = false after Login")
	}
	if got := s.Current().Email; got != "user@example.com" {
		t.Errorf("email = %q, want user@example.com", got)
	}

	s.Logout()
	if s.IsLoggedIn() {
		t.Error("IsLoggedIn() = true after Logout")
	}
	if got := s.Current().Email; got != "" {
		t.Errorf("email after Logout = %q, want empty", got)
	}
}
