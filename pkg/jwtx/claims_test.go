package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/passkeep/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewClaims(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	c := jwtx.NewClaims(jwtx.TypeAccess, "42", "admin2", "passkeep", time.Minute, now)

	require.Equal(t, "42", c.Subject)
	require.Equal(t, "admin2", c.Username)
	require.Equal(t, "passkeep", c.Issuer)
	require.Equal(t, jwtx.TypeAccess, c.Type)
	require.Equal(t, now.Add(time.Minute), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)

	other := jwtx.NewClaims(jwtx.TypeAccess, "42", "admin2", "passkeep", time.Minute, now)
	require.NotEqual(t, c.ID, other.ID, "jti should be unique per token")
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "passkeep"}}

	require.NoError(t, c.ValidateIssuer("passkeep"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("someone-else"), jwtx.ErrIssuer)
}

func TestValidateType(t *testing.T) {
	c := &jwtx.Claims{Type: jwtx.TypePasswordReset}

	require.NoError(t, c.ValidateType(jwtx.TypePasswordReset))
	require.ErrorIs(t, c.ValidateType(jwtx.TypeAccess), jwtx.ErrTokenType)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}}
		require.NoError(t, c.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		}}
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			NotBefore: jwt.NewNumericDate(now.Add(time.Minute)),
		}}
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrNotYetValid)
	})

	t.Run("leeway absorbs skew", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-2 * time.Second)),
		}}
		require.NoError(t, c.ValidateExpiryWithLeeway(10*time.Second))
	})
}
