package cryptox_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGeneratePasswordLength(t *testing.T) {
	tests := []struct {
		requested int
		want      int
	}{
		{-5, 7},
		{0, 7},
		{6, 7},
		{7, 7},
		{12, 12},
		{30, 30},
		{31, 30},
		{1000, 30},
	}

	for _, tt := range tests {
		password, err := cryptox.GeneratePassword(tt.requested)
		require.NoError(t, err)
		require.Len(t, password, tt.want, "requested %d", tt.requested)
		require.Equal(t, tt.want, cryptox.ClampPasswordLength(tt.requested))
	}
}

func TestGeneratePasswordAlphabet(t *testing.T) {
	seen := make(map[rune]struct{})
	for range 200 {
		password, err := cryptox.GeneratePassword(cryptox.MaxPasswordLength)
		require.NoError(t, err)

		for _, r := range password {
			require.True(t, strings.ContainsRune(cryptox.PasswordAlphabet, r), "unexpected rune %q", r)
			seen[r] = struct{}{}
		}
	}

	// 6000 draws over 94 symbols; anything under half coverage means the
	// source is badly skewed.
	require.Greater(t, len(seen), len(cryptox.PasswordAlphabet)/2)
}

func TestPasswordAlphabet(t *testing.T) {
	require.Len(t, cryptox.PasswordAlphabet, 26+26+10+32)
}
