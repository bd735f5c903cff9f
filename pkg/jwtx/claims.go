package jwtx

import (
	"time"

	"github.com/aussiebroadwan/passkeep/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultAccessTokenTTL = 30 * time.Minute
	DefaultResetTokenTTL  = 15 * time.Minute
)

// TokenType separates bearer credentials from single-purpose tokens, so a
// password reset link can never be replayed as an access token.
type TokenType string

const (
	TypeAccess        TokenType = "access"
	TypePasswordReset TokenType = "reset_password"
)

// Claims carried by every token we mint. Subject is the account id.
type Claims struct {
	jwt.RegisteredClaims

	Type     TokenType `json:"typ"`
	Username string    `json:"username,omitempty"`
}

// NewClaims builds claims valid from now for ttl with a fresh jti.
func NewClaims(typ TokenType, subject, username, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Type:     typ,
		Username: username,
	}
}

// NewJTI returns a unique, sortable token id.
func NewJTI() string {
	return idx.New().String()
}

// ValidateIssuer checks the iss claim. An empty expectation is not enforced.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateType rejects tokens minted for another purpose.
func (c *Claims) ValidateType(expected TokenType) error {
	if c.Type != expected {
		return ErrTokenType
	}
	return nil
}

// ValidateExpiry checks exp and nbf against the current time.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway tolerates clock skew of up to leeway.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
