package vault_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	client := setupVaultContainer(t)
	ctx := t.Context()
	s := signup(t, client, "carol")

	me, err := s.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "carol", me.Username)

	_, err = client.Register(ctx, vaultsdk.RegisterRequest{
		Email: "CAROL@mail.ru", Username: "carol2", Password: defaultPassword,
	})
	requireAPIError(t, err, http.StatusConflict, vaultsdk.ErrorCodeConflict)

	_, err = client.Login(ctx, "carol", "wrong-passw0rd")
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)
}

func TestChangePasswordAndDelete(t *testing.T) {
	client := setupVaultContainer(t)
	ctx := t.Context()
	s := signup(t, client, "dave")

	require.NoError(t, s.ChangePassword(ctx, defaultPassword, "n3wpassword"))

	_, err := client.Login(ctx, "dave", defaultPassword)
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)

	s, err = client.Login(ctx, "dave", "n3wpassword")
	require.NoError(t, err)
	require.NoError(t, s.DeleteAccount(ctx, "n3wpassword"))

	_, err = s.Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken)
}
