package ports

// PasswordHasher produces and checks one-way salted password digests.
// Hash returns a different encoded digest on every call for the same
// plaintext; Verify reports false for malformed digests rather than failing.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, secret string) bool
}
