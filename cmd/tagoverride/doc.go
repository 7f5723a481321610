// Package main provides the entry point for tagoverride.
//
// tagoverride generates tag override tokens: keyed SHA-256 digests that
// authorize running an application with a non-default image tag until an
// optional expiry.
//
// Usage:
//
//	tagoverride generate <secret file> <app name> <tag name> [expiry unix time]
//	tagoverride generate --ttl 72h --secret-file /run/secrets/override shiny v2
//	tagoverride -o json generate - shiny v2 < secret
//	tagoverride canonical secret.key shiny v2 1700000000
//
// Unix time is seconds since Jan 1, 1970 UTC.
package main
