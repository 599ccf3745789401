// Package password owns hashing, verification and the strength policy
// applied to every password accepted by the service.
package password

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the shortest password the policy accepts.
const MinLength = 8

var (
	ErrTooShort        = errors.New("password must be at least 8 characters long")
	ErrEntirelyNumeric = errors.New("password cannot be entirely numeric")
)

// Validate applies the strength policy. It returns one of the sentinel
// errors above, or nil for an acceptable password.
func Validate(password string) error {
	if len(password) < MinLength {
		return ErrTooShort
	}
	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ErrEntirelyNumeric
	}
	return nil
}

// Hash returns the bcrypt hash of a password at the default cost.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether candidate matches the stored hash. bcrypt's
// comparison is safe against timing attacks.
func Verify(hashedPassword, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(candidate)) == nil
}
