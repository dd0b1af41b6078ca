package util

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode/utf8"
)

// Digest returns a short stable identifier for a prompt or payload, safe to log.
func Digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:16]
}

// Preview returns at most n runes of s followed by an ellipsis when truncated.
func Preview(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
