package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor for stored credentials.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword derives a bcrypt hash from a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt generate failed: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the stored
// bcrypt hash. Any comparison error counts as a mismatch.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
