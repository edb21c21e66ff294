// Package passwords hashes and verifies administrator passwords and
// enforces the password strength policy.
package passwords

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Hasher is a bcrypt PasswordHasher with a fixed work factor.
type Hasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

// NewHasher returns a Hasher using the given bcrypt cost.
func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash. Fails with common.ErrHashing when
// bcrypt cannot produce a hash (entropy source failure, oversize input).
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrHashing, err)
	}
	return string(b), nil
}

// Verify compares plaintext against hash in constant time. A mismatch is
// (false, nil); only a malformed hash is an error (common.ErrInvalidHashFormat).
func (h *Hasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrInvalidHashFormat, err)
	}
}

// Burn spends the same time as a real verification. Used when the account
// does not exist so response timing does not reveal valid emails.
func (h *Hasher) Burn(plaintext string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plaintext))
}

// Cost reports the cost a hash was created with.
func Cost(hash string) (int, error) {
	c, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInvalidHashFormat, err)
	}
	return c, nil
}

// NeedsRehash reports whether hash was made with a lower cost than h uses.
// A malformed hash never needs a rehash; Verify rejects it instead.
func (h *Hasher) NeedsRehash(hash string) bool {
	c, err := Cost(hash)
	return err == nil && c < h.cost
}
