// Package output provides output formatting for tagoverride.
package output

import "io"

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// Texter is implemented by results with a one-line plain text form.
type Texter interface {
	Text() string
}

// Rower is implemented by results that can be shown as a key/value table.
type Rower interface {
	Rows() [][]string
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format, verbose bool) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TextFormatter{Verbose: verbose}
	}
}
