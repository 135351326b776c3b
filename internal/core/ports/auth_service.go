package ports

import (
	"context"

	"github.com/smarthealth/patient-api/internal/core/domain"
)

// RegisterInput carries the candidate patient fields for registration.
type RegisterInput struct {
	FullName         string
	Email            string
	Password         string
	ContactNumber    string
	DateOfBirth      string
	HealthCardNumber string
}

// AuthService implements the credential lifecycle: registration, login and
// resolution of the calling identity from a bearer token.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Patient, error)
	Login(ctx context.Context, email, password string) (string, *domain.Patient, error)
	Resolve(ctx context.Context, token string) (*domain.Patient, error)
}
