package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "s3cret-pass" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !h.Verify("s3cret-pass", digest) {
		t.Fatalf("expected digest to verify against its own plaintext")
	}
	if h.Verify("wrong-pass", digest) {
		t.Fatalf("expected mismatched password to fail verification")
	}
}

func TestPasswordHasher_SaltFreshness(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	d1, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	d2, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("two hashes of the same input must differ (fresh salt)")
	}
	if !h.Verify("same-input", d1) || !h.Verify("same-input", d2) {
		t.Fatalf("both digests must verify against the original input")
	}
}

func TestPasswordHasher_CorruptDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$10$tooshort"} {
		if h.Verify("anything", digest) {
			t.Fatalf("corrupt digest %q must not verify", digest)
		}
	}
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	h := NewPasswordHasher(-1)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
	h = NewPasswordHasher(bcrypt.MaxCost + 1)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}
