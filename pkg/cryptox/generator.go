package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generated password bounds.
const (
	MinPasswordLength     = 7
	MaxPasswordLength     = 30
	DefaultPasswordLength = 12
)

// PasswordAlphabet is ASCII letters, digits and punctuation.
const PasswordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ClampPasswordLength forces n into [MinPasswordLength, MaxPasswordLength].
func ClampPasswordLength(n int) int {
	return min(max(n, MinPasswordLength), MaxPasswordLength)
}

// GeneratePassword returns a random password drawn uniformly from
// PasswordAlphabet. Out of range lengths are clamped rather than rejected.
func GeneratePassword(length int) (string, error) {
	length = ClampPasswordLength(length)
	limit := big.NewInt(int64(len(PasswordAlphabet)))

	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		password[i] = PasswordAlphabet[n.Int64()]
	}
	return string(password), nil
}
