// Package domain defines the core domain models for tag overrides.
package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/yndnr/tagoverride-go/pkg/token"
)

// maxExpirySeconds keeps expiresAt*1000 within a signed 64-bit millisecond
// timestamp, which is what verifiers parse the expires parameter into.
const maxExpirySeconds = math.MaxInt64 / 1000

// OverrideRequest is the set of fields a tag override token is bound to.
type OverrideRequest struct {
	// App is the application whose default image tag is overridden.
	App string `json:"app" yaml:"app"`

	// Tag is the image tag to run instead of the default.
	Tag string `json:"tag" yaml:"tag"`

	// ExpiresAt is the expiry in Unix milliseconds. 0 means no expiry.
	ExpiresAt uint64 `json:"expires_at" yaml:"expires_at"`
}

// NewOverrideRequest builds a request from an optional expiry in Unix seconds.
// A nil expiry means no expiry; an explicit 0 is equivalent.
func NewOverrideRequest(app, tag string, expirySeconds *uint64) (*OverrideRequest, error) {
	if expirySeconds != nil && *expirySeconds > maxExpirySeconds {
		return nil, ErrExpiryOverflow.WithDetailsf("%d", *expirySeconds)
	}
	return &OverrideRequest{
		App:       app,
		Tag:       tag,
		ExpiresAt: token.ExpiryMillis(expirySeconds),
	}, nil
}

// ParseExpirySeconds parses a positional expiry argument (Unix seconds).
// An empty string means no expiry and returns nil.
func ParseExpirySeconds(s string) (*uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, ErrExpiryInvalid.WithDetailsf("%q", s).WithCause(err)
	}
	if v > maxExpirySeconds {
		return nil, ErrExpiryOverflow.WithDetailsf("%d", v)
	}
	return &v, nil
}

// HasExpiry reports whether the override expires.
func (r *OverrideRequest) HasExpiry() bool {
	return r.ExpiresAt != 0
}

// ExpiresTime returns the expiry as a time.Time, or the zero time if the
// override never expires.
func (r *OverrideRequest) ExpiresTime() time.Time {
	if !r.HasExpiry() {
		return time.Time{}
	}
	return time.UnixMilli(int64(r.ExpiresAt)).UTC()
}

// IsExpiredAt reports whether the override is already expired at now.
func (r *OverrideRequest) IsExpiredAt(now time.Time) bool {
	return r.HasExpiry() && int64(r.ExpiresAt) < now.UnixMilli()
}

// Ambiguous reports whether App or Tag contains the field separator, in
// which case another (App, Tag) pair shares the same canonical form.
func (r *OverrideRequest) Ambiguous() bool {
	return strings.IndexByte(r.App, token.Separator) >= 0 ||
		strings.IndexByte(r.Tag, token.Separator) >= 0
}

// Sign returns the tag override token for the request.
func (r *OverrideRequest) Sign(secret []byte) string {
	return token.Generate(secret, r.App, r.Tag, r.ExpiresAt)
}
