package vault_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginIsRateLimited uses the production limits: the strict profile
// allows a burst of five attempts per address and username.
func TestLoginIsRateLimited(t *testing.T) {
	client := vaultsdk.NewClient(startVault(t, baseEnv()))
	ctx := t.Context()

	var lastErr error
	for range 10 {
		_, lastErr = client.Login(ctx, "mallory", "guess-passw0rd")
		var apiErr *vaultsdk.APIError
		require.ErrorAs(t, lastErr, &apiErr)
		if apiErr.StatusCode == http.StatusTooManyRequests {
			break
		}
	}
	requireAPIError(t, lastErr, http.StatusTooManyRequests, vaultsdk.ErrorCodeRateLimitExceeded)
}
