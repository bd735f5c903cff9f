package httpx

import (
	"context"

	"github.com/aussiebroadwan/passkeep/pkg/jwtx"
)

type ctxKey string

const (
	ctxKeyAccountID ctxKey = "account_id"
	ctxKeyClaims    ctxKey = "claims"
)

// WithAccount stores the authenticated account id and its token claims.
func WithAccount(ctx context.Context, accountID int64, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeyAccountID, accountID)
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// AccountIDFromContext returns the id placed by AuthnMiddleware.
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKeyAccountID).(int64)
	return id, ok
}

func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}
