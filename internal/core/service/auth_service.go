package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smarthealth/patient-api/internal/core/domain"
	"github.com/smarthealth/patient-api/internal/core/ports"
)

// AuthService implements patient registration, login and bearer-token
// identity resolution.
type AuthService struct {
	repo   ports.PatientRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.PatientRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new patient account. The email must not already be
// registered; the plaintext password is hashed before anything is persisted
// and is never stored or logged.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Patient, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	patient := &domain.Patient{
		FullName:         input.FullName,
		Email:            input.Email,
		PasswordHash:     hash,
		ContactNumber:    input.ContactNumber,
		DateOfBirth:      input.DateOfBirth,
		HealthCardNumber: input.HealthCardNumber,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// The unique index is the authoritative guard; a lost race between the
	// pre-check above and this insert still surfaces as ErrDuplicateEmail.
	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("patient_id", created.ID).Str("email", created.Email).Msg("patient registered")
	return created, nil
}

// Login verifies the email/password pair and, on success, returns the
// patient record together with a freshly issued bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Patient, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	patient, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, patient.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(patient.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, patient, nil
}

// Resolve verifies a bearer token and re-loads the bound patient record.
// The record is looked up on every call rather than trusted from the token,
// so deleted or renamed accounts stop authenticating as soon as the change
// lands. All token defects collapse to ErrUnauthenticated.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Patient, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrUnauthenticated
	}

	patient, err := s.repo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return patient, nil
}
