package ports

// TokenService mints and verifies signed, time-bounded bearer tokens.
// Issue binds a token to the given subject (the patient's email).
// Verify returns the subject, or domain.ErrInvalidSignature /
// domain.ErrTokenExpired when the token fails integrity or freshness checks.
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}
