// Package output provides output formatting for tagoverride.
//
// Supported formats:
//
//   - text: the bare result (the token), or a key/value table when verbose
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
//
// Results go to stdout so they can be captured by scripts; diagnostics
// belong on stderr.
package output
