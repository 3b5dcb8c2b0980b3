package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/recordgen/schema"
)

// File is a schema file: the tables of one generated package.
type File struct {
	// Package is the import path of the generated package.
	Package string `yaml:"package,omitempty"`
	// DefaultFormat is the export format of the string conversion.
	DefaultFormat string   `yaml:"defaultFormat,omitempty"`
	Tables        []*Table `yaml:"tables"`
}

// Table is a table of a schema file.
type Table struct {
	Name          string    `yaml:"name"`
	Class         string    `yaml:"class,omitempty"`
	DefaultFormat string    `yaml:"defaultFormat,omitempty"`
	Comment       string    `yaml:"comment,omitempty"`
	Columns       []*Column `yaml:"columns"`
}

// Column is a column of a schema file. Columns are nullable unless
// required or part of the primary key.
type Column struct {
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Size       int     `yaml:"size,omitempty"`
	Scale      *int    `yaml:"scale,omitempty"`
	PrimaryKey bool    `yaml:"primaryKey,omitempty"`
	Required   bool    `yaml:"required,omitempty"`
	Default    *string `yaml:"default,omitempty"`
	Comment    string  `yaml:"comment,omitempty"`
}

// Parse parses a schema file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	f := &File{}
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("load: parse schema: %w", err)
	}
	for i, t := range f.Tables {
		if t == nil {
			return nil, fmt.Errorf("load: parse schema: empty table at position %d", i)
		}
	}
	return f, nil
}

// ReadFile reads and parses the schema file at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file: %s)", err, path)
	}
	return f, nil
}

// Schema returns the table definitions of the file, in file order.
// Definitions are validated when they are generated.
func (f *File) Schema() []*schema.Table {
	tables := make([]*schema.Table, 0, len(f.Tables))
	for _, t := range f.Tables {
		var opts []schema.TableOption
		if t.Class != "" {
			opts = append(opts, schema.Class(t.Class))
		}
		if t.DefaultFormat != "" {
			opts = append(opts, schema.DefaultFormat(t.DefaultFormat))
		}
		if t.Comment != "" {
			opts = append(opts, schema.TableComment(t.Comment))
		}
		cols := make([]*schema.Column, 0, len(t.Columns))
		for _, c := range t.Columns {
			// A nil column is reported by the generator.
			if c == nil {
				cols = append(cols, nil)
				continue
			}
			cols = append(cols, c.column())
		}
		tables = append(tables, schema.NewTable(t.Name, cols, opts...))
	}
	return tables
}

func (c *Column) column() *schema.Column {
	var opts []schema.ColumnOption
	if c.Size > 0 {
		opts = append(opts, schema.Size(c.Size))
	}
	if c.Scale != nil {
		opts = append(opts, schema.Scale(*c.Scale))
	}
	if c.PrimaryKey {
		opts = append(opts, schema.PrimaryKey(), schema.NotNull())
	}
	if c.Required {
		opts = append(opts, schema.NotNull())
	}
	if c.Default != nil {
		opts = append(opts, schema.Default(*c.Default))
	}
	if c.Comment != "" {
		opts = append(opts, schema.Comment(c.Comment))
	}
	return schema.NewColumn(c.Name, c.Type, opts...)
}

// FromTables returns the schema file describing the given tables.
func FromTables(tables []*schema.Table) *File {
	f := &File{Tables: make([]*Table, 0, len(tables))}
	for _, t := range tables {
		ft := &Table{
			Name:          t.Name(),
			Class:         t.Class(),
			DefaultFormat: t.DefaultFormat(),
			Comment:       t.Comment(),
		}
		for _, c := range t.Columns() {
			fc := &Column{
				Name:       c.Name(),
				Type:       c.Type(),
				Size:       c.Size(),
				PrimaryKey: c.PrimaryKey(),
				Required:   !c.Nullable() && !c.PrimaryKey(),
				Comment:    c.Comment(),
			}
			if s := c.Scale(); s >= 0 {
				fc.Scale = &s
			}
			if d, ok := c.Default(); ok {
				fc.Default = &d
			}
			ft.Columns = append(ft.Columns, fc)
		}
		f.Tables = append(f.Tables, ft)
	}
	return f
}

// Marshal encodes the file as YAML.
func (f *File) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("load: encode schema: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("load: encode schema: %w", err)
	}
	return buf.Bytes(), nil
}
