package service

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt hash of the password. The salt
// is embedded in the output, so the hash is self-contained.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A malformed stored value is a mismatch, never an error.
func VerifyPassword(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// IsLegacyPlaintext reports whether a stored credential predates hashing.
// Anything without a recognizable bcrypt version prefix is treated as
// legacy plaintext awaiting migration.
func IsLegacyPlaintext(stored string) bool {
	return !strings.HasPrefix(stored, "$2a$") &&
		!strings.HasPrefix(stored, "$2b$") &&
		!strings.HasPrefix(stored, "$2y$")
}

// Authenticate checks password against the stored credential. When the
// stored value is legacy plaintext and matches, it also returns a fresh
// bcrypt hash for the caller to persist; this login-triggered upgrade is
// the only migration path for legacy credentials. Failed attempts return
// ok=false and no upgrade.
func Authenticate(password, stored string) (ok bool, upgraded string, err error) {
	if IsLegacyPlaintext(stored) {
		if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
			return false, "", nil
		}
		upgraded, err = HashPassword(password)
		if err != nil {
			return false, "", err
		}
		return true, upgraded, nil
	}
	return VerifyPassword(password, stored), "", nil
}
