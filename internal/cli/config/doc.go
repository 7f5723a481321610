// Package config provides CLI configuration for tagoverride.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.tagoverride/cli.yaml)
//   - loader.go: Loading, validation and saving
//
// Configuration includes:
//
//   - Default secret file
//   - Expiry policy for relative expiries
//   - Output format and override link base URL
//   - Log level and format
package config
