package service

import (
	"strconv"
	"time"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
	"github.com/aussiebroadwan/passkeep/pkg/jwtx"
)

// TokenCodec signs and verifies the tokens we mint. *jwtx.HS256 implements it.
type TokenCodec interface {
	jwtx.Signer
	VerifyType(token string, typ jwtx.TokenType) (jwtx.Claims, error)
}

// AccessToken is what a successful login returns.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}

type TokenService struct {
	Codec     TokenCodec
	Issuer    string
	AccessTTL time.Duration
	ResetTTL  time.Duration
}

// IssueAccessToken mints a bearer token whose subject is the account id, so
// renaming an account does not invalidate its sessions.
func (s *TokenService) IssueAccessToken(a domain.Account, now time.Time) (AccessToken, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewClaims(jwtx.TypeAccess, strconv.FormatInt(a.ID, 10), a.Username, s.Issuer, ttl, now)
	token, err := s.Codec.Sign(claims)
	if err != nil {
		return AccessToken{}, err
	}

	return AccessToken{
		Token:     token,
		TokenType: "bearer",
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IssueResetToken mints a single-purpose password reset token. The claims
// are returned so the caller can record the jti.
func (s *TokenService) IssueResetToken(a domain.Account, now time.Time) (string, jwtx.Claims, error) {
	ttl := s.ResetTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultResetTokenTTL
	}

	claims := jwtx.NewClaims(jwtx.TypePasswordReset, strconv.FormatInt(a.ID, 10), a.Username, s.Issuer, ttl, now)
	token, err := s.Codec.Sign(claims)
	if err != nil {
		return "", jwtx.Claims{}, err
	}
	return token, claims, nil
}

// VerifyResetToken accepts only unexpired reset tokens and returns the
// account id they were issued for.
func (s *TokenService) VerifyResetToken(token string) (int64, jwtx.Claims, error) {
	claims, err := s.Codec.VerifyType(token, jwtx.TypePasswordReset)
	if err != nil {
		return 0, jwtx.Claims{}, err
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, jwtx.Claims{}, jwtx.ErrMalformed
	}
	return accountID, claims, nil
}
