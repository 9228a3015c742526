package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"propertyhub-backend/internal/domain"
)

// HashPassword hashes a plain password for storage. Passwords longer than
// bcrypt's 72-byte limit are rejected as invalid input.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most 72 bytes", domain.ErrInvalidInput)
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
// VerifyPassword reports whether password matches the stored hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
