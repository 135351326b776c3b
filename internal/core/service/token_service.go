package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smarthealth/patient-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService mints and verifies HS256 JWTs bound to a patient email.
// The signing key is fixed at construction and never rotated in-process;
// tokens signed with a previous key fail verification.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokenService(signingKey string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{signingKey: []byte(signingKey), ttl: ttl}
}

// Issue creates a signed token whose subject is the given email, valid from
// now until now+TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.signingKey)
}

// Verify checks the token's signature and validity window and returns the
// bound subject. Expired tokens fail with domain.ErrTokenExpired; any other
// defect (bad signature, wrong algorithm, malformed token) fails with
// domain.ErrInvalidSignature.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrInvalidSignature
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidSignature
	}
	return claims.Subject, nil
}
