// Package auth implements the authentication core: password hashing,
// signed session tokens and the admission check for protected requests.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the fixed work factor used for new password hashes.
const DefaultBcryptCost = 10

// Hasher produces and verifies one-way password hashes using bcrypt.
// bcrypt embeds the salt in the hash string and compares in constant time.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: DefaultBcryptCost}
}

// Hash returns a salted bcrypt hash of the plaintext password.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the plaintext password matches the stored hash.
// It never fails: a malformed hash simply does not match.
func (h *Hasher) Verify(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
