package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/passkeep/internal/vault/service"
	"github.com/aussiebroadwan/passkeep/pkg/httpx"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 64 << 10

// writeServiceError maps a service error onto the wire. Anything it does not
// recognise is logged and reported as a bare server_error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		desc := strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
		httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, desc)
	case errors.Is(err, service.ErrConflict):
		desc := strings.TrimPrefix(err.Error(), service.ErrConflict.Error()+": ")
		httpx.WriteError(w, http.StatusConflict, vaultsdk.ErrorCodeConflict, desc)
	case errors.Is(err, service.ErrNotFoundOrForbidden):
		vaultsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrAuth):
		httpx.WriteBearerError(w, "invalid credentials")
	case errors.Is(err, service.ErrForbidden):
		vaultsdk.ErrForbidden.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error(op+" failed", "error", err)
		vaultsdk.ErrServerError.WriteError(w)
	}
}

// accountID returns the authenticated caller. Routes that call it are always
// behind AuthnMiddleware, so a miss is a wiring bug.
func accountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := httpx.AccountIDFromContext(r.Context())
	if !ok {
		httpx.WriteBearerError(w, "missing bearer token")
	}
	return id, ok
}

// pathID parses the {id} wildcard as a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, maxBodyBytes, v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, "malformed JSON body")
		return false
	}
	return true
}

// requireAccount rejects tokens whose account has since been deleted or
// deactivated.
func requireAccount(accounts *service.AccountService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := accountID(w, r)
			if !ok {
				return
			}
			if _, err := accounts.ResolveCurrentAccount(r.Context(), id); err != nil {
				if errors.Is(err, service.ErrAuth) {
					httpx.WriteBearerError(w, "account is no longer active")
					return
				}
				writeServiceError(w, r, err, "resolve account")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
