package http_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	vaulthttp "github.com/aussiebroadwan/passkeep/internal/vault/http"
	"github.com/aussiebroadwan/passkeep/internal/vault/notify"
	"github.com/aussiebroadwan/passkeep/internal/vault/service"
	"github.com/aussiebroadwan/passkeep/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/aussiebroadwan/passkeep/pkg/jwtx"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	mu    sync.Mutex
	token string
}

func (c *captureNotifier) PasswordReset(_ context.Context, n notify.PasswordResetNotice) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = n.Token
	return nil
}

func (c *captureNotifier) lastToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

type testServer struct {
	*httptest.Server
	client   *vaultsdk.Client
	notifier *captureNotifier
	store    *sqlite.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	cipher, err := cryptox.NewCipher(bytes.Repeat([]byte{0x11}, cryptox.KeySize))
	require.NoError(t, err)
	codec, err := jwtx.NewHS256(bytes.Repeat([]byte{0x22}, jwtx.MinSecretSize), "passkeep-test")
	require.NoError(t, err)

	notifier := &captureNotifier{}
	tokens := &service.TokenService{Codec: codec, Issuer: "passkeep-test", AccessTTL: time.Hour, ResetTTL: time.Hour}

	router := vaulthttp.NewRouter(codec, "test", st, cipher, slogx.Discard())
	router.AccountService = &service.AccountService{
		Store:    st,
		Hasher:   cryptox.NewHasher("pepper"),
		Tokens:   tokens,
		Notifier: notifier,
	}
	router.VaultService = &service.VaultService{Store: st, Cipher: cipher}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		Server:   srv,
		client:   vaultsdk.NewClient(srv.URL),
		notifier: notifier,
		store:    st,
	}
}

func (ts *testServer) signup(t *testing.T, username string) *vaultsdk.Session {
	t.Helper()
	ctx := context.Background()

	_, err := ts.client.Register(ctx, vaultsdk.RegisterRequest{
		Email:    username + "@mail.ru",
		Username: username,
		Password: "passw0rd!",
	})
	require.NoError(t, err)

	s, err := ts.client.Login(ctx, username, "passw0rd!")
	require.NoError(t, err)
	return s
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *vaultsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *vaultsdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

func TestGroupLifecycle(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	s := ts.signup(t, "admin2")

	created, err := s.CreateGroup(ctx, "Test_Group", "Some Description")
	require.NoError(t, err)
	require.Positive(t, created.ID)

	groups, err := s.ListGroups(ctx)
	require.NoError(t, err)
	require.Equal(t, []vaultsdk.GroupResponse{{ID: created.ID, Name: "test_group", Description: "some description"}}, groups)

	_, err = s.CreateGroup(ctx, "test_group", "")
	requireAPIError(t, err, http.StatusConflict, vaultsdk.ErrorCodeConflict)

	name := "update_group"
	updated, err := s.UpdateGroup(ctx, created.ID, vaultsdk.UpdateGroupRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "update_group", updated.Name)
	require.Equal(t, "some description", updated.Description)

	_, err = s.UpdateGroup(ctx, created.ID, vaultsdk.UpdateGroupRequest{})
	requireAPIError(t, err, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest)

	require.NoError(t, s.DeleteGroup(ctx, created.ID))

	groups, err = s.ListGroups(ctx)
	require.NoError(t, err)
	require.Empty(t, groups)

	err = s.DeleteGroup(ctx, created.ID)
	requireAPIError(t, err, http.StatusNotFound, vaultsdk.ErrorCodeNotFound)
}

func TestCredentialScenario(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	s := ts.signup(t, "admin")

	g, err := s.CreateGroup(ctx, "new_group", "")
	require.NoError(t, err)

	for _, c := range []vaultsdk.CreateCredentialRequest{
		{GroupID: g.ID, ServiceName: "github", Login: "test1", Password: "password"},
		{GroupID: g.ID, ServiceName: "vk", Login: "test2", Password: "password"},
		{GroupID: g.ID, ServiceName: "inst", Login: "test3", Password: "password"},
	} {
		_, err := s.CreateCredential(ctx, c)
		require.NoError(t, err)
	}

	_, err = s.CreateCredential(ctx, vaultsdk.CreateCredentialRequest{
		GroupID: g.ID, ServiceName: "VK", Login: "test2", Password: "other",
	})
	requireAPIError(t, err, http.StatusConflict, vaultsdk.ErrorCodeConflict)

	creds, err := s.ListCredentials(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, creds, 3)

	rows, err := s.ListGroupsWithCredentials(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "new_group", rows[0].GroupName)

	matches, err := s.Search(ctx, vaultsdk.SearchRequest{ServiceName: "inst"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "test3", matches[0].Login)
	require.Equal(t, "new_group", matches[0].GroupName)

	secret, err := s.RevealSecret(ctx, matches[0].ID)
	require.NoError(t, err)
	require.Equal(t, "password", secret)

	_, err = s.Search(ctx, vaultsdk.SearchRequest{})
	requireAPIError(t, err, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest)

	newSecret := "Hunter2!"
	updated, err := s.UpdateCredential(ctx, matches[0].ID, vaultsdk.UpdateCredentialRequest{Password: &newSecret})
	require.NoError(t, err)
	require.Equal(t, "inst", updated.ServiceName)

	secret, err = s.RevealSecret(ctx, matches[0].ID)
	require.NoError(t, err)
	require.Equal(t, "Hunter2!", secret)

	require.NoError(t, s.DeleteCredential(ctx, matches[0].ID))
	_, err = s.RevealSecret(ctx, matches[0].ID)
	requireAPIError(t, err, http.StatusNotFound, vaultsdk.ErrorCodeNotFound)
}

func TestCrossAccountAccessLooksLikeNotFound(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	alice := ts.signup(t, "alice")
	bob := ts.signup(t, "bob")

	g, err := alice.CreateGroup(ctx, "private", "")
	require.NoError(t, err)
	c, err := alice.CreateCredential(ctx, vaultsdk.CreateCredentialRequest{
		GroupID: g.ID, ServiceName: "bank", Login: "alice", Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = bob.RevealSecret(ctx, c.ID)
	requireAPIError(t, err, http.StatusNotFound, vaultsdk.ErrorCodeNotFound)

	name := "mine"
	_, err = bob.UpdateGroup(ctx, g.ID, vaultsdk.UpdateGroupRequest{Name: &name})
	requireAPIError(t, err, http.StatusNotFound, vaultsdk.ErrorCodeNotFound)

	err = bob.DeleteCredential(ctx, c.ID)
	requireAPIError(t, err, http.StatusNotFound, vaultsdk.ErrorCodeNotFound)

	_, err = bob.CreateCredential(ctx, vaultsdk.CreateCredentialRequest{
		GroupID: g.ID, ServiceName: "bank", Login: "bob", Password: "x",
	})
	requireAPIError(t, err, http.StatusNotFound, vaultsdk.ErrorCodeNotFound)

	creds, err := bob.ListCredentials(ctx, g.ID)
	require.NoError(t, err)
	require.Empty(t, creds)

	secret, err := alice.RevealSecret(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "s3cret", secret)
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	_, err := ts.client.NewSession("", time.Time{}).ListGroups(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)

	_, err = ts.client.NewSession("not-a-jwt", time.Time{}).ListGroups(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)

	_, err = ts.client.Login(ctx, "nobody", "passw0rd!")
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)

	resp, err := http.Get(ts.URL + "/v1/groups")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
}

func TestDeletedAccountTokenIsRejected(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	s := ts.signup(t, "leaver")

	_, err := s.CreateGroup(ctx, "g", "")
	require.NoError(t, err)

	err = s.DeleteAccount(ctx, "wrong-password1")
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)

	require.NoError(t, s.DeleteAccount(ctx, "passw0rd!"))

	_, err = s.ListGroups(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)
}

func TestAccountProfile(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	s := ts.signup(t, "carol")
	_ = ts.signup(t, "dave")

	me, err := s.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "carol", me.Username)
	require.Equal(t, "carol@mail.ru", me.Email)
	require.True(t, me.Active)

	phone := "+61400000000"
	me, err = s.UpdateProfile(ctx, vaultsdk.UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, phone, me.Phone)

	taken := "dave"
	_, err = s.UpdateProfile(ctx, vaultsdk.UpdateProfileRequest{Username: &taken})
	requireAPIError(t, err, http.StatusConflict, vaultsdk.ErrorCodeConflict)

	profile, err := s.Lookup(ctx, "dave")
	require.NoError(t, err)
	require.Equal(t, "dave", profile.Username)

	_, err = s.Lookup(ctx, "nobody")
	requireAPIError(t, err, http.StatusNotFound, vaultsdk.ErrorCodeNotFound)

	_, err = ts.client.Register(ctx, vaultsdk.RegisterRequest{Email: "not-an-email", Username: "erin", Password: "passw0rd!"})
	requireAPIError(t, err, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest)
}

func TestPasswordResetFlow(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	_ = ts.signup(t, "frank")

	out, err := ts.client.RequestPasswordReset(ctx, "frank@mail.ru")
	require.NoError(t, err)
	require.Equal(t, "f***@mail.ru", out.Email)

	token := ts.notifier.lastToken()
	require.NotEmpty(t, token)

	require.NoError(t, ts.client.ResetPassword(ctx, token, "n3wpassword"))

	err = ts.client.ResetPassword(ctx, token, "an0ther-one")
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)

	_, err = ts.client.Login(ctx, "frank", "passw0rd!")
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)

	s, err := ts.client.Login(ctx, "frank", "n3wpassword")
	require.NoError(t, err)
	require.NoError(t, s.ChangePassword(ctx, "n3wpassword", "th1rdpassword"))

	_, err = ts.client.RequestPasswordReset(ctx, "ghost")
	requireAPIError(t, err, http.StatusNotFound, vaultsdk.ErrorCodeNotFound)
}

func TestGeneratePassword(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	pw, err := ts.client.GeneratePassword(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pw, cryptox.DefaultPasswordLength)

	pw, err = ts.client.GeneratePassword(ctx, 30)
	require.NoError(t, err)
	require.Len(t, pw, 30)
	for _, r := range pw {
		require.True(t, strings.ContainsRune(cryptox.PasswordAlphabet, r))
	}

	for _, n := range []int{6, 31} {
		_, err = ts.client.GeneratePassword(ctx, n)
		requireAPIError(t, err, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest)
	}

	resp, err := http.Get(ts.URL + "/v1/passwords/generate?length=abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	live, err := ts.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := ts.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Cipher)

	require.NoError(t, ts.store.Close())

	_, err = ts.client.GetReadiness(ctx)
	var apiErr *vaultsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestSwaggerDocIsServed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMalformedBodies(t *testing.T) {
	ts := newTestServer(t)
	s := ts.signup(t, "gina")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"unknown field", http.MethodPost, "/v1/groups", `{"name":"a","owner":1}`, http.StatusBadRequest},
		{"trailing data", http.MethodPost, "/v1/groups", `{"name":"a"}{}`, http.StatusBadRequest},
		{"bad id", http.MethodPatch, "/v1/groups/abc", `{"name":"a"}`, http.StatusBadRequest},
		{"negative id", http.MethodDelete, "/v1/credentials/-1", ``, http.StatusBadRequest},
		{"wrong method", http.MethodPut, "/v1/groups", `{}`, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+s.AccessToken())
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
