package domain

import (
	"errors"
	"time"
)

// Credential and identity errors. Login failures deliberately collapse to
// ErrInvalidCredentials so callers cannot distinguish an unknown email from
// a wrong password.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrMissingCredential  = errors.New("missing or malformed authorization header")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Patient models a registered patient account.
type Patient struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	ContactNumber    string    `json:"contact_number,omitempty"`
	DateOfBirth      string    `json:"date_of_birth,omitempty"`
	HealthCardNumber string    `json:"health_card_number,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
