package gen

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/syssam/recordgen"
	"github.com/syssam/recordgen/schema"
)

// Type represents one generated class: a resolved table with the
// information the generator needs to emit it.
type Type struct {
	*Config
	table *schema.Table
	// Name holds the class name.
	Name string
	// Table holds the table name.
	Table string
	// Fields holds the fields in declared column order.
	Fields []*Field
	fields map[string]*Field
	// DefaultFormat is the export format of the string conversion.
	DefaultFormat string
	// Comment is the table description.
	Comment string
}

// recordMethods holds the method names a generated class inherits from
// the embedded record, and the names the generator itself declares.
var recordMethods = func() map[string]bool {
	names := map[string]bool{"Record": true, "State": true, "Copy": true}
	t := reflect.TypeOf(new(recordgen.Record))
	for i := 0; i < t.NumMethod(); i++ {
		names[t.Method(i).Name] = true
	}
	return names
}()

// NewType creates a new type from the given table definition. All the
// problems found in the table are returned joined as *SchemaError.
func NewType(c *Config, t *schema.Table) (*Type, error) {
	if t == nil {
		return nil, NewSchemaError("", "", "nil table definition", nil)
	}
	typ := &Type{
		Config:        c,
		table:         t,
		Name:          t.Class(),
		Table:         t.Name(),
		DefaultFormat: c.DefaultFormat,
		Comment:       t.Comment(),
		fields:        make(map[string]*Field),
	}
	if typ.Name == "" {
		typ.Name = pascal(t.Name())
	}
	if err := typ.checkTable(); err != nil {
		return nil, err
	}
	if f := t.DefaultFormat(); f != "" {
		typ.DefaultFormat = f
	}
	var (
		errs    []error
		methods = make(map[string]string)
	)
	for i, col := range t.Columns() {
		tf, err := newField(typ, i, col)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := typ.checkField(tf, methods); err != nil {
			errs = append(errs, err)
			continue
		}
		typ.Fields = append(typ.Fields, tf)
		typ.fields[tf.Name] = tf
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return typ, nil
}

// checkTable checks the table level settings.
func (t *Type) checkTable() error {
	var msg string
	switch name := t.table.Name(); {
	case strings.TrimSpace(name) == "":
		msg = "table name cannot be empty"
	case strings.ContainsAny(name, `/\`) || strings.Contains(name, ".."):
		msg = fmt.Sprintf("table name %q contains path separator characters", name)
	case !validIdent(t.Name):
		msg = fmt.Sprintf("class name %q is not a valid exported Go identifier", t.Name)
	case recordMethods[t.Name]:
		msg = fmt.Sprintf("class name %q conflicts with the embedded record", t.Name)
	case strings.HasSuffix(t.FileName(), "_test.go"):
		msg = fmt.Sprintf("file name %q would be compiled as a test file", t.FileName())
	case len(t.table.Columns()) == 0:
		msg = "table has no columns"
	case t.table.DefaultFormat() != "" && !t.Registry().Has(t.table.DefaultFormat()):
		msg = fmt.Sprintf("default format %q is not registered", t.table.DefaultFormat())
	default:
		return nil
	}
	return NewSchemaError(t.table.Name(), "", msg, nil)
}

// checkField checks the field against the fields declared before it.
// methods maps the method names declared so far to their column. Export
// names and column names share one namespace, as records are looked up
// by either.
func (t *Type) checkField(f *Field, methods map[string]string) error {
	if t.fields[f.Name] != nil {
		return NewSchemaError(t.Table, f.Name, "column redeclared", nil)
	}
	for _, m := range f.Methods() {
		if recordMethods[m] {
			return NewSchemaError(t.Table, f.Name, fmt.Sprintf("accessor %s conflicts with a record method", m), nil)
		}
		if other, ok := methods[m]; ok {
			return NewSchemaError(t.Table, f.Name, fmt.Sprintf("accessor %s conflicts with column %s", m, other), nil)
		}
	}
	for _, o := range t.Fields {
		if o.ExportName == f.ExportName || o.Name == f.ExportName || o.ExportName == f.Name {
			return NewSchemaError(t.Table, f.Name, fmt.Sprintf("export name %s conflicts with column %s", f.ExportName, o.Name), nil)
		}
	}
	for _, m := range f.Methods() {
		methods[m] = f.Name
	}
	return nil
}

// Label returns the snake_case label of the class.
func (t Type) Label() string { return snake(t.Name) }

// FileName returns the name of the generated file.
func (t Type) FileName() string { return snake(t.Name) + ".go" }

// Receiver returns the receiver name of the generated methods.
func (t Type) Receiver() string { return "m" }

// Constructor returns the name of the generated constructor.
func (t Type) Constructor() string { return "New" + t.Name }

// TableConst returns the name of the table name constant.
func (t Type) TableConst() string { return t.Name + "Table" }

// DescriptorVar returns the name of the unexported descriptor variable.
func (t Type) DescriptorVar() string { return lowerFirst(t.Name) + "Descriptor" }

// PrimaryKey returns the primary-key fields.
func (t Type) PrimaryKey() []*Field {
	var pk []*Field
	for _, f := range t.Fields {
		if f.PrimaryKey {
			pk = append(pk, f)
		}
	}
	return pk
}

// HasNullable reports if the type has nullable fields.
func (t Type) HasNullable() bool {
	for _, f := range t.Fields {
		if f.Nullable {
			return true
		}
	}
	return false
}

// FieldBy returns the first field that the given function returns true on it.
func (t Type) FieldBy(fn func(*Field) bool) (*Field, bool) {
	for _, f := range t.Fields {
		if fn(f) {
			return f, true
		}
	}
	return nil, false
}

// Idents returns the package level identifiers the generated file declares.
func (t Type) Idents() []string {
	ids := []string{t.Name, t.Constructor(), t.TableConst(), t.Name + "Columns", t.DescriptorVar()}
	for _, f := range t.Fields {
		ids = append(ids, f.Constant())
	}
	return ids
}
