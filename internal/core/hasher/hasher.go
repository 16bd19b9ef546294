// Package hasher fingerprints generated artifacts for the lock manifest.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// Fingerprint computes the sha256 fingerprint of content in the
// "sha256:<hex>" format recorded in prd-lock.toml.
func Fingerprint(content []byte) string {
	sum := sha256.Sum256(content)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// FingerprintFile fingerprints a file on disk.
func FingerprintFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint %s: %w", path, err)
	}
	return Fingerprint(content), nil
}
