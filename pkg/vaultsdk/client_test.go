package vaultsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginSendsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/auth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "alice", r.PostForm.Get("username"))
		require.Equal(t, "passw0rd!", r.PostForm.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 60})
	}))
	defer srv.Close()

	s, err := NewClient(srv.URL+"/").Login(context.Background(), "alice", "passw0rd!")
	require.NoError(t, err)
	require.Equal(t, "tok", s.AccessToken())
	require.False(t, s.ExpiresAt().IsZero())
}

func TestSessionSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "/v1/credentials/7/secret", r.URL.Path)
		_ = json.NewEncoder(w).Encode(RevealSecretResponse{ID: 7, Password: "hunter2"})
	}))
	defer srv.Close()

	s := NewClient(srv.URL).NewSession("tok", noExpiry)
	secret, err := s.RevealSecret(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "hunter2", secret)
}

func TestErrorResponsesBecomeAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/groups/1":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: ErrorCodeNotFound, ErrorDescription: "no such group"})
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	s := NewClient(srv.URL).NewSession("tok", noExpiry)

	err := s.DeleteGroup(context.Background(), 1)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, ErrorCodeNotFound, apiErr.Code)
	require.Equal(t, "no such group", apiErr.Description)

	_, err = s.ListGroups(context.Background())
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestAPIErrorWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	NewAPIError(http.StatusConflict, ErrorCodeConflict, "group exists").WriteError(rec)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, ErrorResponse{Error: "conflict", ErrorDescription: "group exists"}, body)
}

var noExpiry = time.Now().Add(time.Hour)
