package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives an irreversible bcrypt hash of the given plaintext
// password using the standard library-recommended default cost.
//
// bcrypt embeds a per-hash random salt, so two calls with the same input
// produce different hashes. The returned string is safe to persist.
//
// Returns an error if the password exceeds bcrypt's 72-byte limit or the
// hashing itself fails.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPasswordHash compares a plaintext password against a stored bcrypt
// hash. The comparison is constant-time inside bcrypt.
//
// Returns true only if the password matches the hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
