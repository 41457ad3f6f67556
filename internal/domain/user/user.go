package user

import (
	"errors"
	"strings"
	"time"

	"github.com/codeswap/backend/internal/id"
)

const MinPasswordLength = 8

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
)

// User is an account that can log in. The password is never kept in
// plain text; PasswordHash is filled in by the account service.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// New validates registration input and returns a user without a password
// hash.
func New(email, password, fullName string) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" || strings.TrimSpace(fullName) == "" {
		return nil, ErrMissingFields
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	return &User{
		ID:        id.GenerateID(),
		Email:     email,
		FullName:  strings.TrimSpace(fullName),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NormalizeEmail trims and lower-cases an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
