// Package token computes tag override tokens.
//
// A tag override token authorizes running a named application with a
// non-default image tag until an optional expiry. It is the SHA-256 digest
// of a canonical byte sequence built from the signed fields and a shared
// secret:
//
//	app || 0x00 || tag || 0x00 || uint64be(expiresAtMillis) || 0x00 || secret
//
// Token Format:
//
//   - Body: URL-safe Base64 with padding of the 32 byte digest
//   - Total: 44 characters, the last one always '='
//
// An expiry of zero means the override never expires. The canonical form
// is exported so that verifiers can recompute the same digest.
//
// Names that contain a NUL byte make the canonical form ambiguous:
// ("a\x00b", "c") and ("a", "b\x00c") serialize identically. Callers that
// accept untrusted names should reject NUL before generating a token.
package token
