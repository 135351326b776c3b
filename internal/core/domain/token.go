package domain

import "errors"

// Token verification errors. Both surface to API callers as a generic 401;
// the distinction exists for logging and tests.
var (
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
)
