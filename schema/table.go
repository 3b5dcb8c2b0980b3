package schema

import (
	"slices"
	"strings"
)

// Table describes one persistent entity type. A Table is immutable once
// constructed with NewTable.
type Table struct {
	name          string
	class         string
	defaultFormat string
	comment       string
	columns       []*Column
}

// TableOption configures a Table while it is constructed.
type TableOption func(*Table)

// Class overrides the generated class name, which is otherwise derived
// from the table name.
func Class(name string) TableOption {
	return func(t *Table) { t.class = name }
}

// DefaultFormat overrides the export format used for the string
// conversion of the generated class.
func DefaultFormat(name string) TableOption {
	return func(t *Table) { t.defaultFormat = name }
}

// TableComment attaches a description that is emitted as the doc comment
// of the generated class.
func TableComment(text string) TableOption {
	return func(t *Table) { t.comment = text }
}

// NewTable returns a table with the given name and ordered columns.
func NewTable(name string, columns []*Column, opts ...TableOption) *Table {
	t := &Table{
		name:    name,
		columns: slices.Clone(columns),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Class returns the class name override, or "" when unset.
func (t *Table) Class() string { return t.class }

// DefaultFormat returns the default-format override, or "" when unset.
func (t *Table) DefaultFormat() string { return t.defaultFormat }

// Comment returns the table description.
func (t *Table) Comment() string { return t.comment }

// Columns returns the columns in declared order.
func (t *Table) Columns() []*Column { return slices.Clone(t.columns) }

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.columns {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// PrimaryKey returns the primary-key columns in declared order.
func (t *Table) PrimaryKey() []*Column {
	var pk []*Column
	for _, c := range t.columns {
		if c.primaryKey {
			pk = append(pk, c)
		}
	}
	return pk
}

// Reorder returns a copy of the table with its columns arranged in the
// given order. Columns not named keep their relative order after the
// named ones; unknown names are ignored.
func (t *Table) Reorder(names ...string) *Table {
	cols := make([]*Column, 0, len(t.columns))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if c, ok := t.Column(n); ok && !seen[n] {
			cols = append(cols, c)
			seen[n] = true
		}
	}
	for _, c := range t.columns {
		if !seen[c.name] {
			cols = append(cols, c)
		}
	}
	nt := *t
	nt.columns = cols
	return &nt
}

// Column describes one field of a table. A Column is immutable once
// constructed with NewColumn.
type Column struct {
	name       string
	typ        string
	size       int
	scale      int
	nullable   bool
	primaryKey bool
	def        string
	hasDefault bool
	comment    string
}

// ColumnOption configures a Column while it is constructed.
type ColumnOption func(*Column)

// Size sets the declared size of the column, e.g. the length of a VARCHAR.
func Size(n int) ColumnOption {
	return func(c *Column) { c.size = n }
}

// Scale sets the declared scale of a numeric column.
func Scale(n int) ColumnOption {
	return func(c *Column) { c.scale = n }
}

// NotNull marks the column as required.
func NotNull() ColumnOption {
	return func(c *Column) { c.nullable = false }
}

// PrimaryKey marks the column as part of the primary key.
func PrimaryKey() ColumnOption {
	return func(c *Column) { c.primaryKey = true }
}

// Default sets the raw textual default value of the column.
func Default(raw string) ColumnOption {
	return func(c *Column) {
		c.def = raw
		c.hasDefault = true
	}
}

// Comment attaches a description to the column.
func Comment(text string) ColumnOption {
	return func(c *Column) { c.comment = text }
}

// NewColumn returns a nullable column with the given name and raw type,
// e.g. "INTEGER" or "VARCHAR(255)". The scale is unset unless given.
func NewColumn(name, typ string, opts ...ColumnOption) *Column {
	c := &Column{
		name:     name,
		typ:      strings.TrimSpace(typ),
		scale:    -1,
		nullable: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the raw column type.
func (c *Column) Type() string { return c.typ }

// Size returns the declared size, or zero.
func (c *Column) Size() int { return c.size }

// Scale returns the declared scale, or a negative number when unset.
func (c *Column) Scale() int { return c.scale }

// Nullable reports whether the column accepts null values.
func (c *Column) Nullable() bool { return c.nullable }

// PrimaryKey reports whether the column is part of the primary key.
func (c *Column) PrimaryKey() bool { return c.primaryKey }

// Default returns the raw default value and whether one was declared.
func (c *Column) Default() (string, bool) { return c.def, c.hasDefault }

// Comment returns the column description.
func (c *Column) Comment() string { return c.comment }
