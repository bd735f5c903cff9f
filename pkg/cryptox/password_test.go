package cryptox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHasherHashFormat(t *testing.T) {
	h := cryptox.NewHasher("pepper")

	hash, err := h.Hash("Secret123")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Equal(t, "m=19456,t=2,p=1", parts[3])
	require.NotEmpty(t, parts[4])
	require.NotEmpty(t, parts[5])
}

func TestHasherVerify(t *testing.T) {
	h := cryptox.NewHasher("pepper")

	hash1, err := h.Hash("Secret123")
	require.NoError(t, err)
	hash2, err := h.Hash("Secret123")
	require.NoError(t, err)
	require.NotEqual(t, hash1, hash2, "salts should differ")

	require.NoError(t, h.Verify("Secret123", hash1))
	require.NoError(t, h.Verify("Secret123", hash2))

	for _, wrong := range []string{"secret123", "Secret123 ", "", strings.Repeat("x", 1000)} {
		require.ErrorIs(t, h.Verify(wrong, hash1), cryptox.ErrPasswordMismatch, "input %q", wrong)
	}
}

func TestHasherPepperMatters(t *testing.T) {
	hash, err := cryptox.NewHasher("one").Hash("Secret123")
	require.NoError(t, err)

	require.ErrorIs(t, cryptox.NewHasher("two").Verify("Secret123", hash), cryptox.ErrPasswordMismatch)
}

func TestHasherRejectsMalformedHash(t *testing.T) {
	h := cryptox.NewHasher("pepper")

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"bad parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"bad salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
		{"bad hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, h.Verify("Secret123", tt.hash), cryptox.ErrInvalidHash)
		})
	}
}

func TestLoadOrCreatePepper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")

	first, err := cryptox.LoadOrCreatePepper(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := cryptox.LoadOrCreatePepper(path)
	require.NoError(t, err)
	require.Equal(t, first, second, "pepper should survive restarts")
}

func TestLoadOrCreatePepperEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pepper")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	_, err := cryptox.LoadOrCreatePepper(path)
	require.Error(t, err)
}
