package httpx_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/passkeep/pkg/httpx"
	"github.com/aussiebroadwan/passkeep/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))

	serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	signer, err := jwtx.NewHS256(bytes.Repeat([]byte{'s'}, jwtx.MinSecretSize), "passkeep")
	require.NoError(t, err)

	var gotID int64
	h := httpx.AuthnMiddleware(signer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.AccountIDFromContext(r.Context())
		require.True(t, ok)
		gotID = id
		w.WriteHeader(http.StatusOK)
	}))

	mint := func(t *testing.T, typ jwtx.TokenType, sub string) string {
		t.Helper()
		token, err := signer.Sign(jwtx.NewClaims(typ, sub, "admin2", "passkeep", time.Minute, time.Now()))
		require.NoError(t, err)
		return token
	}

	withAuth := func(value string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/groups", nil)
		if value != "" {
			req.Header.Set("Authorization", value)
		}
		return req
	}

	t.Run("valid access token", func(t *testing.T) {
		rec := serve(h, withAuth("Bearer "+mint(t, jwtx.TypeAccess, "42")))
		require.Equal(t, http.StatusOK, rec.Code)
		require.EqualValues(t, 42, gotID)
	})

	tests := []struct {
		name   string
		header func(t *testing.T) string
	}{
		{"missing header", func(*testing.T) string { return "" }},
		{"wrong scheme", func(t *testing.T) string { return "Basic " + mint(t, jwtx.TypeAccess, "42") }},
		{"garbage token", func(*testing.T) string { return "Bearer not-a-token" }},
		{"reset token", func(t *testing.T) string { return "Bearer " + mint(t, jwtx.TypePasswordReset, "42") }},
		{"non numeric subject", func(t *testing.T) string { return "Bearer " + mint(t, jwtx.TypeAccess, "admin2") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, withAuth(tt.header(t)))
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.True(t, strings.HasPrefix(rec.Header().Get("WWW-Authenticate"), "Bearer "))
			require.Contains(t, rec.Body.String(), "invalid_token")
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	decode := func(body string) error {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var p payload
		return httpx.DecodeJSON(httptest.NewRecorder(), req, 1<<10, &p)
	}

	require.NoError(t, decode(`{"name":"test_group"}`))
	require.Error(t, decode(`{"name":"a","extra":1}`))
	require.Error(t, decode(`{"name":"a"}{"name":"b"}`))
	require.Error(t, decode(`{"name":"`+strings.Repeat("x", 2000)+`"}`))
	require.Error(t, decode(``))
}

func TestWriteJSONDisablesCaching(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]string{"ok": "yes"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}
