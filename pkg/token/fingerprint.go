// Package token computes tag override tokens.
package token

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLength is the number of hex characters kept in a fingerprint.
const fingerprintLength = 16

// Fingerprint returns a short hex identifier of a secret.
//
// It lets operators tell which secret produced a token without the secret
// itself ever reaching a log line.
func Fingerprint(secret []byte) string {
	h := sha256.Sum256(secret)
	return hex.EncodeToString(h[:])[:fingerprintLength]
}
