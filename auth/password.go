package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt. This is the scheme
// used for all new registrations.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// LegacyHash is the unsalted single-round SHA-256 hex digest used by
// pre-migration user rows. Do not use it for new passwords.
func LegacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks a plaintext password against a stored verifier,
// accepting both the bcrypt and the legacy SHA-256 format during the
// migration window.
func VerifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	digest := LegacyHash(password)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(digest)) == 1
}
