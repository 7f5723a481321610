// Package domain defines the core domain models for tag overrides.
package domain

import (
	"crypto/rand"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// IssuanceIDPrefix is the prefix of issuance IDs.
const IssuanceIDPrefix = "toi-"

// Issuance is the result of signing an OverrideRequest.
//
// Token is a credential: it must only be printed to the caller, never logged.
type Issuance struct {
	ID string `json:"id" yaml:"id"`

	OverrideRequest `yaml:",inline"`

	// IssuedAt is the issuance time in Unix milliseconds.
	IssuedAt    int64  `json:"issued_at" yaml:"issued_at"`
	Fingerprint string `json:"secret_fingerprint" yaml:"secret_fingerprint"`
	Token       string `json:"token" yaml:"token"`
}

// GenerateIssuanceID generates a new issuance ID using ULID.
// Format: toi-{ulid_lowercase}, 30 characters total.
func GenerateIssuanceID(now time.Time) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(now), entropy)
	if err != nil {
		return "", ErrInternal.WithCause(err)
	}
	return IssuanceIDPrefix + strings.ToLower(id.String()), nil
}

// Query returns the override query string: expires=<ms>&sig=<token>.
func (i *Issuance) Query() string {
	return "expires=" + strconv.FormatUint(i.ExpiresAt, 10) + "&sig=" + i.Token
}

// URL appends the override query to base. Any query already present on
// base is kept after the override parameters.
func (i *Issuance) URL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", ErrConfigInvalid.WithDetailsf("base_url %q", base).WithCause(err)
	}
	if u.RawQuery != "" {
		u.RawQuery = i.Query() + "&" + u.RawQuery
	} else {
		u.RawQuery = i.Query()
	}
	return u.String(), nil
}
