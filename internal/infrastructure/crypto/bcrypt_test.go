package crypto

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	secret, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if secret == "s3cret-pass" {
		t.Fatalf("hash returned plaintext")
	}
	if !h.Verify("s3cret-pass", secret) {
		t.Fatalf("expected verification to succeed")
	}
	if h.Verify("wrong-pass", secret) {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestBcryptHasher_SaltVariance(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("first hash failed: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("second hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected differently salted hashes, both were %q", first)
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("both hashes should verify against the original password")
	}
}

func TestBcryptHasher_MalformedSecret(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed secret must fail verification")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty secret must fail verification")
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(999)

	secret, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(secret))
	if err != nil {
		t.Fatalf("cost extraction failed: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
