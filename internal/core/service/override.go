// Package service provides domain services for tag overrides.
package service

import (
	"context"
	"math"
	"time"

	"github.com/yndnr/tagoverride-go/internal/core/domain"
	"github.com/yndnr/tagoverride-go/internal/telemetry/logger"
	"github.com/yndnr/tagoverride-go/pkg/token"
)

// DefaultExpirationDays is the default upper bound for relative expiries.
const DefaultExpirationDays = 7

// MaxExpirationDays is the largest cap a time.Duration can hold.
const MaxExpirationDays = int(math.MaxInt64 / int64(24*time.Hour))

// OverrideServiceConfig holds configuration for OverrideService.
type OverrideServiceConfig struct {
	// ExpirationDays caps relative expiries (TTL). 0 disables the cap.
	// Values above MaxExpirationDays are treated as MaxExpirationDays.
	ExpirationDays int

	// DefaultToMaxExpiry applies the ExpirationDays cap as the expiry when
	// a request carries neither an absolute expiry nor a TTL. When false
	// such requests never expire.
	DefaultToMaxExpiry bool

	// Now returns the current time (default: time.Now).
	Now func() time.Time
}

// DefaultOverrideServiceConfig returns default configuration.
func DefaultOverrideServiceConfig() *OverrideServiceConfig {
	return &OverrideServiceConfig{
		ExpirationDays: DefaultExpirationDays,
		Now:            time.Now,
	}
}

// IssueRequest describes a token to issue.
//
// At most one of ExpirySeconds and TTL may be set.
type IssueRequest struct {
	App string
	Tag string

	// ExpirySeconds is an absolute expiry in Unix seconds, used as given.
	ExpirySeconds *uint64

	// TTL is a relative expiry, clamped by the configured maximum.
	TTL *time.Duration
}

// OverrideService issues tag override tokens.
type OverrideService struct {
	maxTTL       time.Duration
	defaultToMax bool
	now          func() time.Time
}

// NewOverrideService creates a new OverrideService.
func NewOverrideService(config *OverrideServiceConfig) *OverrideService {
	if config == nil {
		config = DefaultOverrideServiceConfig()
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}

	days := min(config.ExpirationDays, MaxExpirationDays)

	return &OverrideService{
		maxTTL:       time.Duration(days) * 24 * time.Hour,
		defaultToMax: config.DefaultToMaxExpiry,
		now:          now,
	}
}

// MaxTTL returns the configured relative expiry cap (0 for none).
func (s *OverrideService) MaxTTL() time.Duration {
	return s.maxTTL
}

// EffectiveTTL applies the expiry cap to a requested TTL:
//
//   - nil uses the cap
//   - with a positive cap, a positive TTL is min(ttl, cap) and a
//     non-positive TTL becomes the cap
//   - without a cap the TTL is used as given
//
// A result <= 0 means no expiry.
func (s *OverrideService) EffectiveTTL(ttl *time.Duration) time.Duration {
	if ttl == nil {
		return s.maxTTL
	}
	if s.maxTTL > 0 {
		if *ttl > 0 {
			return min(*ttl, s.maxTTL)
		}
		return s.maxTTL
	}
	return *ttl
}

// Resolve turns an IssueRequest into the OverrideRequest that gets signed.
func (s *OverrideService) Resolve(req *IssueRequest) (*domain.OverrideRequest, error) {
	if req.ExpirySeconds != nil && req.TTL != nil {
		return nil, domain.ErrExpiryConflict
	}

	if req.ExpirySeconds != nil {
		return domain.NewOverrideRequest(req.App, req.Tag, req.ExpirySeconds)
	}
	if req.TTL == nil && !s.defaultToMax {
		return domain.NewOverrideRequest(req.App, req.Tag, nil)
	}

	out := &domain.OverrideRequest{App: req.App, Tag: req.Tag}
	if ttl := s.EffectiveTTL(req.TTL); ttl > 0 {
		out.ExpiresAt = uint64(s.now().Add(ttl).UnixMilli())
	}
	return out, nil
}

// Issue resolves the request, signs it with secret and logs an audit entry.
// The secret and the token are never logged.
func (s *OverrideService) Issue(ctx context.Context, secret []byte, req *IssueRequest) (*domain.Issuance, error) {
	if len(secret) == 0 {
		return nil, domain.ErrSecretEmpty
	}

	resolved, err := s.Resolve(req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	id, err := domain.GenerateIssuanceID(now)
	if err != nil {
		return nil, err
	}

	iss := &domain.Issuance{
		ID:              id,
		OverrideRequest: *resolved,
		IssuedAt:        now.UnixMilli(),
		Fingerprint:     token.Fingerprint(secret),
		Token:           resolved.Sign(secret),
	}

	log := logger.L(logger.WithIssuanceID(ctx, id))
	if resolved.Ambiguous() {
		log.Warn("app or tag contains a NUL byte; canonical form is ambiguous",
			"app", resolved.App, "tag", resolved.Tag)
	}
	if resolved.IsExpiredAt(now) {
		log.Warn("expiry is in the past; override will be rejected",
			"expires_at", resolved.ExpiresTime().Format(time.RFC3339))
	}
	log.Info("tag override issued",
		"app", resolved.App,
		"tag", resolved.Tag,
		"expires_at_ms", resolved.ExpiresAt,
		"fingerprint", iss.Fingerprint,
	)

	return iss, nil
}
