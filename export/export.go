package export

import (
	"bytes"
	"io"

	"github.com/syssam/recordgen/schema/field"
)

// Format renders an ordered field set into one serialized representation.
// Implementations must be stateless and safe for concurrent use.
type Format interface {
	// Name returns the name the format is registered under, e.g. "xml".
	Name() string
	// Export writes fields, in the given order, to w.
	Export(w io.Writer, fields Fields) error
}

// The FormatFunc type is an adapter to allow the use of ordinary
// functions as export formats.
type FormatFunc struct {
	FormatName string
	Fn         func(io.Writer, Fields) error
}

// Name returns f.FormatName.
func (f FormatFunc) Name() string { return f.FormatName }

// Export calls f.Fn(w, fields).
func (f FormatFunc) Export(w io.Writer, fields Fields) error { return f.Fn(w, fields) }

// Field is one named value of a record, in export form.
type Field struct {
	Name  string
	Value field.Value
}

// Fields is an ordered field set.
type Fields []Field

// Names returns the field names in order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	return names
}

// Get returns the value of the named field.
func (fs Fields) Get(name string) (field.Value, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f.Value, true
		}
	}
	return field.Value{}, false
}

// Bytes renders fields with f into a new buffer.
func Bytes(f Format, fields Fields) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Export(&buf, fields); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
