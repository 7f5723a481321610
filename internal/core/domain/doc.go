// Package domain defines the core domain models for tag overrides.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - OverrideRequest: the (app, tag, expiry) triple a token is bound to
//   - Issuance: a signed request plus its audit metadata
//   - Errors: domain error codes shared by the CLI and services
package domain
