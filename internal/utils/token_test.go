package utils

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexTokenShape(t *testing.T) {
	tok := HexToken(32)
	require.True(t, strings.HasPrefix(tok, "0x"))
	require.Len(t, tok, 66)
	// The payload is valid lowercase hex
	_, err := hex.DecodeString(tok[2:])
	require.NoError(t, err)
}

func TestWalletAndTransactionIDLengths(t *testing.T) {
	require.Len(t, NewWalletAddress(), 42) // 0x + 40 hex chars
	require.Len(t, NewTransactionID(), 66) // 0x + 64 hex chars
}

func TestTokensDoNotRepeat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := NewTransactionID()
		require.False(t, seen[tok])
		seen[tok] = true
	}
}
