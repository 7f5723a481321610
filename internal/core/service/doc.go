// Package service provides domain services for tag overrides.
//
// Domain services contain pure business logic and orchestrate operations
// on domain models. This package contains:
//
//   - OverrideService: expiry policy, token issuance and audit logging
//
// Services hold no mutable state after construction and are safe for
// concurrent use.
package service
