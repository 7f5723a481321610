// Package command provides CLI command definitions for tagoverride.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags, config and logger setup
//   - generate.go: Token generation (the main command)
//   - canonical.go: Canonical form inspection for verifier debugging
//   - config.go: Configuration subcommand group
//   - version.go: Build information
//   - secret.go: Secret sourcing from files, stdin or a terminal prompt
//   - exit.go: Process exit status per error code area
//
// Commands follow a consistent pattern of parsing arguments, calling the
// override service, and formatting the result to the app's writer.
package command
