// Package confloader provides configuration loading mechanism.
//
// This package implements a configuration loader that supports multiple
// sources using koanf as the underlying library.
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables
//  3. Configuration file (YAML)
//  4. Default values
//
// Environment variables map to keys by stripping the prefix, lowercasing
// and turning a double underscore into a nesting dot:
//
//	TAGOVERRIDE_SECRET_FILE   -> secret_file
//	TAGOVERRIDE_LOG__LEVEL    -> log.level
package confloader
