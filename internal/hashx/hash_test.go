package hashx

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkalens/wallpaper/internal/common"
)

// Tests run at MinCost: the work factor does not change behavior, only speed.

func TestHashVerify_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	token, err := h.Hash([]byte("1234"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if token == "1234" {
		t.Fatalf("hash token must not equal plaintext")
	}

	ok, err := h.Verify([]byte("1234"), token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("Verify(p, Hash(p)) must be true")
	}
}

func TestVerify_Mismatch(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	token, err := h.Hash([]byte("1234"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	// A close guess is still just a mismatch.
	ok, err := h.Verify([]byte("12345"), token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatalf("Verify must be false for a different plaintext")
	}
}

func TestVerify_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	t1, err := h.Hash([]byte("abcd"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	t2, err := h.Hash([]byte("abcd"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("two hashes of the same plaintext must differ (random salt)")
	}
}

func TestVerify_CorruptToken(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Verify([]byte("1234"), "not-a-bcrypt-token")
	if !errors.Is(err, common.ErrCorruptHash) {
		t.Fatalf("want common.ErrCorruptHash, got %v", err)
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	h := NewHasher(-1)
	if h.cost != DefaultCost {
		t.Fatalf("want fallback to DefaultCost, got %d", h.cost)
	}
	h = NewHasher(bcrypt.MaxCost + 1)
	if h.cost != DefaultCost {
		t.Fatalf("want fallback to DefaultCost, got %d", h.cost)
	}
}
