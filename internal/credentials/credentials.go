// Package credentials hashes and verifies user passwords and issues
// opaque session tokens.
package credentials

import (
	"errors"
	"fmt"
	"time"

	"lostfound-market/internal/marketerrors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of password at the given cost.
// A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
// Passwords over 72 bytes are a validation error.
func Hash(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("hash password: %w - %w", marketerrors.ErrValidation, err)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Matches reports whether password matches the stored hash
func Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewToken returns an opaque session token for userID.
// Tokens are not validated by the server.
func NewToken(userID int, now time.Time) string {
	return fmt.Sprintf("token-%d-%d-%s", userID, now.UnixMilli(), uuid.NewString())
}
