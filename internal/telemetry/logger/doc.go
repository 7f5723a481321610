// Package logger provides structured logging for tagoverride.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the global default
//   - context.go: Context-aware logging with issuance IDs
//   - redact.go: Sensitive data redaction
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Automatic masking of secrets and override tokens
//   - Context propagation of the issuance ID
package logger
