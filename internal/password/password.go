// Package password wraps bcrypt hashing for stored credentials.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shopManagement/internal/errs"
)

// Hash derives a bcrypt digest from a plaintext password. Plaintext is never
// stored anywhere.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrCredential, err)
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored digest. Pure comparison,
// no side effects.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
