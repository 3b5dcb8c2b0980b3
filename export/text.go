package export

import (
	"bufio"
	"io"
)

// TextFormat renders one "Name: Value" line per field, with "null" for
// unset values. It is the default string conversion of generated records.
type TextFormat struct{}

// Name implements Format.
func (TextFormat) Name() string { return Text }

// Export implements Format.
func (TextFormat) Export(w io.Writer, fields Fields) error {
	bw := bufio.NewWriter(w)
	for _, f := range fields {
		bw.WriteString(f.Name)
		bw.WriteString(": ")
		bw.WriteString(f.Value.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
