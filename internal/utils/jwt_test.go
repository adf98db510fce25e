package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("0xabc123", "test-secret")
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "0xabc123", claims.Wallet)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("0xabc123", "test-secret")
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	require.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", "test-secret")
	require.Error(t, err)
}
