package utils

import (
	"crypto/rand"  // Cryptographic randomness
	"encoding/hex" // Hex encoding
)

// HexToken returns a 0x-prefixed random hex token carrying n bytes of
// entropy. Collisions are treated as negligible, not handled.
func HexToken(n int) string {
	b := make([]byte, n)
	// crypto/rand does not fail on supported platforms
	_, _ = rand.Read(b)
	return "0x" + hex.EncodeToString(b)
}

// NewWalletAddress returns a fresh wallet address, 0x + 40 hex chars
func NewWalletAddress() string {
	return HexToken(20)
}

// NewTransactionID returns a fresh sale transaction id, 0x + 64 hex chars
func NewTransactionID() string {
	return HexToken(32)
}
