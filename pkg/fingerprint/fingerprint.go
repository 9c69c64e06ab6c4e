// Package fingerprint produces deterministic content hashes used as cache
// keys for derived data.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Text returns the SHA256 hex digest of a string. Attribute extraction is
// cached keyed by the fingerprint of the normalized description, so repeated
// scoring of the same report never re-scans the text.
func Text(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}

// HasChanged compares two fingerprints to detect changes
func HasChanged(oldFingerprint, newFingerprint string) bool {
	return oldFingerprint != newFingerprint
}
