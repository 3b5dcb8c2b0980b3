package recordgen

import (
	"github.com/syssam/recordgen/export"
	"github.com/syssam/recordgen/schema/field"
)

// Descriptor is the metadata the generator records for one class.
// Generated code declares one Descriptor per table and shares it between
// all instances; it must not be modified after the first record is built.
type Descriptor struct {
	// Name is the class name, e.g. "Author".
	Name string
	// Table is the table name, e.g. "author".
	Table string
	// Columns holds the columns in declared order.
	Columns []Column
	// DefaultFormat is the export format used by String and ToDefaultString.
	DefaultFormat string
	// Formats is the registry ExportTo looks formats up in.
	// A nil registry means export.Builtin().
	Formats *export.Registry
}

// Column describes one generated field.
type Column struct {
	// Name is the export name, e.g. "FirstName".
	Name string
	// Column is the column name, e.g. "first_name".
	Column string
	// Type is the semantic type of the column.
	Type field.Type
	// Nullable reports whether the column accepts null.
	Nullable bool
	// PrimaryKey reports whether the column is part of the primary key.
	PrimaryKey bool
	// Default is the value of the column on construction and after Clear.
	// A zero Value means the column has no default and starts null.
	Default field.Value
}

// initial returns the value a column holds in its default state.
func (c *Column) initial() field.Value {
	if c.Default.Type() == c.Type {
		return c.Default
	}
	return field.Null(c.Type)
}

// Index returns the position of the column whose export name or column
// name is name, or -1.
func (d *Descriptor) Index(name string) int {
	for i := range d.Columns {
		if d.Columns[i].Name == name || d.Columns[i].Column == name {
			return i
		}
	}
	return -1
}

// Registry returns the registry used for the exports of the class.
func (d *Descriptor) Registry() *export.Registry {
	if d.Formats != nil {
		return d.Formats
	}
	return export.Builtin()
}
