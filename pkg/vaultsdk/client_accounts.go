package vaultsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*CreatedResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/accounts", req, nil)
	if err != nil {
		return nil, err
	}

	var out CreatedResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges a username and password for a Session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/token",
		strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.NewSession(tok.AccessToken, expiresAt), nil
}

// RequestPasswordReset asks for a reset link for the account with this
// email or username.
func (c *Client) RequestPasswordReset(ctx context.Context, identifier string) (*PasswordResetResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/password-resets", PasswordResetRequest{Identifier: identifier}, nil)
	if err != nil {
		return nil, err
	}

	var out PasswordResetResponse
	if err := decodeJSON(resp, &out, http.StatusAccepted); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword sets a new password with a token from a reset link.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/password-resets/"+url.PathEscape(token),
		ResetPasswordRequest{NewPassword: newPassword}, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GeneratePassword asks the server for a random password. A zero length
// uses the server default.
func (c *Client) GeneratePassword(ctx context.Context, length int) (string, error) {
	path := "/v1/passwords/generate"
	if length != 0 {
		path += "?length=" + strconv.Itoa(length)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}

	var out GeneratePasswordResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.GeneratedPassword, nil
}

func (s *Session) Me(ctx context.Context) (*AccountResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/accounts/me", nil)
	if err != nil {
		return nil, err
	}

	var out AccountResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*AccountResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPatch, "/v1/accounts/me", req)
	if err != nil {
		return nil, err
	}

	var out AccountResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Lookup(ctx context.Context, username string) (*ProfileResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/accounts/"+url.PathEscape(username), nil)
	if err != nil {
		return nil, err
	}

	var out ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/accounts/me/password", ChangePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DeleteAccount removes the account and its whole vault.
func (s *Session) DeleteAccount(ctx context.Context, password string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/accounts/me", DeleteAccountRequest{Password: password})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
