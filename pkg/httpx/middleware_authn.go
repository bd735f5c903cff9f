package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/passkeep/pkg/jwtx"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
)

// AuthnMiddleware requires a valid access token and puts the account id from
// its subject into the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				WriteBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteBearerError(w, "token verification failed")
				return
			}

			if err := claims.ValidateType(jwtx.TypeAccess); err != nil {
				WriteBearerError(w, "not an access token")
				return
			}

			accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil || accountID <= 0 {
				log.Warn("jwt subject is not an account id", "sub", claims.Subject)
				WriteBearerError(w, "token verification failed")
				return
			}

			ctx = WithAccount(ctx, accountID, claims)
			ctx = slogx.With(ctx, "account_id", accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

// WriteBearerError writes an RFC 6750 invalid_token response.
func WriteBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}
