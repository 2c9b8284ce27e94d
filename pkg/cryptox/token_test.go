package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]struct{})
	for range 64 {
		tok, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		require.Len(t, tok, 43)
		require.NotContains(t, seen, tok)
		seen[tok] = struct{}{}
	}

	short, err := GenerateToken(TokenSize128)
	require.NoError(t, err)
	require.Len(t, short, 22)
}

func TestGenerateTokenRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -8} {
		tok, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, tok)
	}
}

func TestFingerprintToken(t *testing.T) {
	a := FingerprintToken("refresh-1")
	require.Equal(t, a, FingerprintToken("refresh-1"))
	require.NotEqual(t, a, FingerprintToken("refresh-2"))
	require.Len(t, a, 43)
}
