package recordgen

import (
	"bytes"
	"io"

	"github.com/syssam/recordgen/export"
	"github.com/syssam/recordgen/schema/field"
)

// Record is the base of generated classes. It stores one value per
// declared column together with the persistence State, and implements
// every operation that does not depend on the static column types.
//
// Generated classes embed Record and add typed accessors:
//
//	type Author struct {
//		recordgen.Record
//	}
//
// The zero Record has no columns: it renders as "" and Clear only resets
// its State. Generated accessors require a record built by the class
// constructor. A Record is not safe for concurrent use.
type Record struct {
	State
	desc     *Descriptor
	values   []field.Value
	modified []bool
}

// NewRecord returns a fresh record for the given class: IsNew is set and
// every column holds its default value.
func NewRecord(d *Descriptor) Record {
	r := Record{
		desc:     d,
		values:   make([]field.Value, len(d.Columns)),
		modified: make([]bool, len(d.Columns)),
	}
	r.Clear()
	return r
}

// Descriptor returns the class metadata of the record.
func (r *Record) Descriptor() *Descriptor { return r.desc }

var noColumns = &Descriptor{}

func (r *Record) descriptor() *Descriptor {
	if r.desc == nil {
		return noColumns
	}
	return r.desc
}

// Value returns the value of the i-th column.
func (r *Record) Value(i int) field.Value { return r.values[i] }

// ValueOf returns the value of the column with the given export or
// column name.
func (r *Record) ValueOf(name string) (field.Value, bool) {
	i := r.descriptor().Index(name)
	if i < 0 {
		return field.Value{}, false
	}
	return r.values[i], true
}

// SetValue stores v in the i-th column and marks the column and the
// record as modified. It is called by generated setters, which guarantee
// that v has the column type.
func (r *Record) SetValue(i int, v field.Value) {
	r.values[i] = v
	r.modified[i] = true
	r.markModified()
}

// Assign sets the column with the given export or column name from a Go
// value. Only lossless conversions are accepted, and nil sets the column
// to null. On failure the record is left unchanged.
func (r *Record) Assign(name string, x any) error {
	d := r.descriptor()
	i := d.Index(name)
	if i < 0 {
		return NewUnknownColumnError(d.Name, name)
	}
	c := &d.Columns[i]
	v, err := field.Coerce(c.Type, x)
	if err != nil {
		return &AssignError{Class: d.Name, Column: c.Column, Err: err}
	}
	r.SetValue(i, v)
	return nil
}

// Clear resets the record to its freshly constructed state, regardless of
// its current state: every column holds its default value, no column is
// modified, IsNew is set and IsDeleted is unset.
func (r *Record) Clear() {
	d := r.descriptor()
	for i := range d.Columns {
		r.values[i] = d.Columns[i].initial()
		r.modified[i] = false
	}
	r.State.reset()
}

// ResetModified clears the modified flags of the record and its columns.
func (r *Record) ResetModified() {
	clear(r.modified)
	r.isModified = false
}

// IsColumnModified reports whether the column with the given export or
// column name was set since the last Clear or ResetModified.
func (r *Record) IsColumnModified(name string) bool {
	i := r.descriptor().Index(name)
	return i >= 0 && r.modified[i]
}

// ModifiedColumns returns the names of the modified columns in declared order.
func (r *Record) ModifiedColumns() []string {
	var names []string
	for i, m := range r.modified {
		if m {
			names = append(names, r.descriptor().Columns[i].Column)
		}
	}
	return names
}

// Fields returns the export names and values of the record in declared
// column order.
func (r *Record) Fields() export.Fields {
	fields := make(export.Fields, len(r.values))
	for i, v := range r.values {
		fields[i] = export.Field{Name: r.descriptor().Columns[i].Name, Value: v}
	}
	return fields
}

// ToMap returns the values of the record keyed by export name.
// Null values are stored as nil.
func (r *Record) ToMap() map[string]any {
	m := make(map[string]any, len(r.values))
	for i, v := range r.values {
		m[r.descriptor().Columns[i].Name] = v.Any()
	}
	return m
}

// CopyInto sets the non primary-key columns of dst from r. Columns are
// matched by column name and type, so dst may be of another class. The
// copied columns are marked modified; the state flags of dst are kept.
func (r *Record) CopyInto(dst *Record) {
	src, to := r.descriptor(), dst.descriptor()
	for i := range src.Columns {
		c := &src.Columns[i]
		if c.PrimaryKey {
			continue
		}
		j := to.Index(c.Column)
		if j < 0 || to.Columns[j].Type != c.Type || to.Columns[j].PrimaryKey {
			continue
		}
		dst.SetValue(j, r.values[i])
	}
}

// Export writes the record to w in the named format of the class registry.
// It never modifies the record.
func (r *Record) Export(w io.Writer, format string) error {
	return r.descriptor().Registry().Export(w, format, r.Fields())
}

// ExportTo renders the record in the named format of the class registry.
// An unregistered name fails with an *export.UnknownFormatError.
func (r *Record) ExportTo(format string) ([]byte, error) {
	return r.ExportWith(r.descriptor().Registry(), format)
}

// ExportWith renders the record in the named format of reg.
func (r *Record) ExportWith(reg *export.Registry, format string) ([]byte, error) {
	f, err := reg.Lookup(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.Export(&buf, r.Fields()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToDefaultString renders the record in the default format of its class.
func (r *Record) ToDefaultString() (string, error) {
	b, err := r.ExportTo(r.descriptor().DefaultFormat)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// String implements fmt.Stringer on top of ToDefaultString.
// It returns "" if the record cannot be rendered.
func (r *Record) String() string {
	s, _ := r.ToDefaultString()
	return s
}
