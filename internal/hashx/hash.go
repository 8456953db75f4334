// Package hashx implements the one-way credential hashing used for the wall
// passphrase and the per-memo passwords. Hash tokens are bcrypt strings and
// can only be checked, never reversed.
package hashx

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkalens/wallpaper/internal/common"
)

// DefaultCost is the bcrypt work factor used when no explicit cost is given.
// It matches the cost the seed data was generated with.
const DefaultCost = 10

// Hasher hashes and verifies plaintext secrets at a fixed work factor.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// bcrypt-supported range fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash token for plaintext.
func (h *Hasher) Hash(plaintext []byte) (string, error) {
	token, err := bcrypt.GenerateFromPassword(plaintext, h.cost)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// Verify reports whether plaintext matches the stored hash token.
// A mismatch returns (false, nil). A token bcrypt cannot parse returns
// common.ErrCorruptHash: that signals stored-data corruption, not a failed
// login attempt.
func (h *Hasher) Verify(plaintext []byte, hashToken string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashToken), plaintext)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, common.ErrCorruptHash
}
