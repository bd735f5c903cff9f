package service

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/passkeep/internal/vault/notify"
	"github.com/aussiebroadwan/passkeep/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/aussiebroadwan/passkeep/pkg/jwtx"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
	"github.com/stretchr/testify/require"
)

// recordingNotifier keeps every notice it is given.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []notify.PasswordResetNotice
}

func (r *recordingNotifier) PasswordReset(_ context.Context, n notify.PasswordResetNotice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
	return nil
}

func (r *recordingNotifier) last(t *testing.T) notify.PasswordResetNotice {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.notices)
	return r.notices[len(r.notices)-1]
}

type testEnv struct {
	store    *sqlite.Store
	vault    *VaultService
	accounts *AccountService
	tokens   *TokenService
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	cipher, err := cryptox.NewCipher(bytes.Repeat([]byte{0x01}, cryptox.KeySize))
	require.NoError(t, err)

	codec, err := jwtx.NewHS256(bytes.Repeat([]byte{0x02}, jwtx.MinSecretSize), "test-issuer")
	require.NoError(t, err)

	tokens := &TokenService{
		Codec:     codec,
		Issuer:    "test-issuer",
		AccessTTL: time.Minute,
		ResetTTL:  time.Minute,
	}
	notifier := &recordingNotifier{}

	return &testEnv{
		store:  st,
		vault:  &VaultService{Store: st, Cipher: cipher},
		tokens: tokens,
		accounts: &AccountService{
			Store:    st,
			Hasher:   cryptox.NewHasher("test-pepper"),
			Tokens:   tokens,
			Notifier: notifier,
		},
		notifier: notifier,
	}
}

func (e *testEnv) register(t *testing.T, username string) int64 {
	t.Helper()

	a, err := e.accounts.Register(context.Background(), RegisterInput{
		Email:    username + "@mail.ru",
		Username: username,
		Password: "passw0rd!",
	})
	require.NoError(t, err)
	return a.ID
}

func discardLogger() *slog.Logger { return slogx.Discard() }
