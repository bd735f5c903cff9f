package vaultsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to a passkeep server. It performs the unauthenticated calls
// and creates Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated view of the API. Access tokens are not
// refreshed; log in again once ExpiresAt has passed.
type Session struct {
	client      *Client
	accessToken string
	expiresAt   time.Time
}

// NewSession wraps an access token obtained elsewhere.
func (c *Client) NewSession(accessToken string, expiresAt time.Time) *Session {
	return &Session{client: c, accessToken: accessToken, expiresAt: expiresAt}
}

func (s *Session) AccessToken() string  { return s.accessToken }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
