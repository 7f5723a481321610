// Package output provides output formatting for tagoverride.
package output

import (
	"fmt"
	"io"
)

// TextFormatter formats data for humans and shell pipelines.
type TextFormatter struct {
	// Verbose renders Rower results as a key/value table instead of the
	// one-line form.
	Verbose bool
}

// Format writes the plain text form of data.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	if r, ok := data.(Rower); ok && f.Verbose {
		return (&Table{Rows: r.Rows()}).Render(w)
	}
	if t, ok := data.(Texter); ok {
		_, err := fmt.Fprintln(w, t.Text())
		return err
	}
	if r, ok := data.(Rower); ok {
		return (&Table{Rows: r.Rows()}).Render(w)
	}

	_, err := fmt.Fprintln(w, data)
	return err
}
