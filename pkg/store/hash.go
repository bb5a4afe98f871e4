package store

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashName computes a SHA-256 hash of an entry name. File-backed stores use
// it to derive filesystem-safe paths from arbitrary names; the full
// 64-character hex string is kept to prevent collisions.
func hashName(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}
