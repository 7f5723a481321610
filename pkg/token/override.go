// Package token computes tag override tokens.
package token

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"math"
)

const (
	// Separator delimits the fields of the canonical form.
	Separator byte = 0x00

	// DigestLength is the size in bytes of a decoded token.
	DigestLength = sha256.Size

	// EncodedLength is the length of an encoded token (padded Base64).
	EncodedLength = 44

	// MaxExpirySeconds is the largest expiry whose millisecond value fits
	// the 8-byte expiry field.
	MaxExpirySeconds uint64 = math.MaxUint64 / 1000
)

// Encoding is the token text encoding: URL-safe alphabet, '=' padded.
var Encoding = base64.URLEncoding

// ExpiryMillis converts an optional Unix timestamp in seconds to the
// millisecond value that is signed. A nil expiry means "never" and maps to 0.
//
// The expiry must not exceed MaxExpirySeconds; larger values wrap modulo
// 2^64 and sign a different expiry. Callers taking untrusted input check
// the bound first.
func ExpiryMillis(expirySeconds *uint64) uint64 {
	if expirySeconds == nil {
		return 0
	}
	return *expirySeconds * 1000
}

// Canonical returns the byte sequence that is hashed for the given fields.
func Canonical(secret []byte, app, tag string, expiresAtMillis uint64) []byte {
	buf := make([]byte, 0, len(app)+len(tag)+8+3+len(secret))
	buf = append(buf, app...)
	buf = append(buf, Separator)
	buf = append(buf, tag...)
	buf = append(buf, Separator)
	buf = binary.BigEndian.AppendUint64(buf, expiresAtMillis)
	buf = append(buf, Separator)
	buf = append(buf, secret...)
	return buf
}

// Sum returns the raw digest for the given fields.
func Sum(secret []byte, app, tag string, expiresAtMillis uint64) [DigestLength]byte {
	return sha256.Sum256(Canonical(secret, app, tag, expiresAtMillis))
}

// Generate returns the encoded token for an expiry given in milliseconds
// since the Unix epoch (0 for no expiry).
func Generate(secret []byte, app, tag string, expiresAtMillis uint64) string {
	sum := Sum(secret, app, tag, expiresAtMillis)
	return Encoding.EncodeToString(sum[:])
}

// GenerateSeconds returns the encoded token for an optional expiry given
// in Unix seconds, which must not exceed MaxExpirySeconds.
func GenerateSeconds(secret []byte, app, tag string, expirySeconds *uint64) string {
	return Generate(secret, app, tag, ExpiryMillis(expirySeconds))
}
