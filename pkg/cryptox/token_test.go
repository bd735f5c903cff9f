package cryptox_test

import (
	"encoding/base64"
	"testing"

	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	for _, size := range []int{cryptox.TokenSize128, cryptox.TokenSize256, 24} {
		a, err := cryptox.GenerateToken(size)
		require.NoError(t, err)
		b, err := cryptox.GenerateToken(size)
		require.NoError(t, err)
		require.NotEqual(t, a, b)

		raw, err := base64.RawURLEncoding.DecodeString(a)
		require.NoError(t, err)
		require.Len(t, raw, size)
	}

	_, err := cryptox.GenerateToken(0)
	require.Error(t, err)
}

func TestFingerprintToken(t *testing.T) {
	require.Equal(t, cryptox.FingerprintToken("abc"), cryptox.FingerprintToken("abc"))
	require.NotEqual(t, cryptox.FingerprintToken("abc"), cryptox.FingerprintToken("abd"))
	require.Len(t, cryptox.FingerprintToken("abc"), 43)
}
