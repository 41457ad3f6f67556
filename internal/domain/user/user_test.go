package user_test

import (
	"errors"
	"testing"

	"github.com/codeswap/backend/internal/domain/user"
)

func TestNew(t *testing.T) {
	u, err := user.New("  Ada@Example.com ", "correct horse", "Ada Lovelace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.ID == "" {
		t.Error("expected non-empty ID")
	}
	if u.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash != nil {
		t.Error("expected no password hash on a new user")
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name                      string
		email, password, fullName string
		want                      error
	}{
		{"missing email", "", "password123", "Ada", user.ErrMissingFields},
		{"missing password", "a@example.com", "", "Ada", user.ErrMissingFields},
		{"missing name", "a@example.com", "password123", " ", user.ErrMissingFields},
		{"short password", "a@example.com", "short", "Ada", user.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := user.New(tt.email, tt.password, tt.fullName); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a, _ := user.New("a@example.com", "password123", "A")
	b, _ := user.New("b@example.com", "password123", "B")
	if a.ID == b.ID {
		t.Error("expected distinct IDs")
	}
}
