package gen

import (
	"fmt"
	"math"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/recordgen/schema"
	"github.com/syssam/recordgen/schema/field"
)

// Field holds the information of a generated field.
type Field struct {
	column *schema.Column
	typ    *Type
	// Index is the position of the field in declared column order.
	Index int
	// Name is the column name.
	Name string
	// StructName is the Go name of the accessors, e.g. "FirstName" or "ID".
	StructName string
	// ExportName is the name of the field in export output, e.g. "Id".
	ExportName string
	// RawType is the column type as declared.
	RawType string
	// Type is the resolved semantic type.
	Type field.Type
	// Nullable indicates that the column accepts null.
	Nullable bool
	// PrimaryKey indicates that the column is part of the primary key.
	PrimaryKey bool
	// Default holds the parsed default value, if HasDefault is set.
	Default field.Value
	// HasDefault indicates that the column declares a non-null default.
	HasDefault bool
	// Comment is the column description.
	Comment string
}

func newField(t *Type, i int, c *schema.Column) (*Field, error) {
	if c == nil {
		return nil, NewSchemaError(t.Table, "", fmt.Sprintf("nil column definition at position %d", i), nil)
	}
	f := &Field{
		column:     c,
		typ:        t,
		Index:      i,
		Name:       c.Name(),
		StructName: pascal(c.Name()),
		ExportName: exportName(c.Name()),
		RawType:    c.Type(),
		Nullable:   c.Nullable(),
		PrimaryKey: c.PrimaryKey(),
		Comment:    c.Comment(),
	}
	if f.Name == "" {
		return nil, NewSchemaError(t.Table, "", fmt.Sprintf("column name cannot be empty at position %d", i), nil)
	}
	if !validIdent(f.StructName) {
		return nil, NewSchemaError(t.Table, f.Name, fmt.Sprintf("accessor name %q is not a valid Go identifier", f.StructName), nil)
	}
	typ, err := field.Resolve(c.Type(), c.Scale())
	if err != nil {
		return nil, NewSchemaError(t.Table, f.Name, fmt.Sprintf("cannot resolve type %q", c.Type()), err)
	}
	f.Type = typ
	if raw, ok := c.Default(); ok {
		v, err := field.Parse(typ, raw)
		switch {
		case err != nil:
			return nil, NewSchemaError(t.Table, f.Name, fmt.Sprintf("invalid default value %q", raw), err)
		case v.IsNull() && !f.Nullable:
			return nil, NewSchemaError(t.Table, f.Name, "null default on a non-nullable column", nil)
		case !v.IsNull():
			f.Default, f.HasDefault = v, true
		}
	}
	return f, nil
}

// Constant returns the name of the column name constant.
func (f Field) Constant() string { return f.typ.Name + "Column" + f.StructName }

// Getter returns the getter name of the field.
func (f Field) Getter() string { return f.StructName }

// Setter returns the setter name of the field.
func (f Field) Setter() string { return "Set" + f.StructName }

// Clearer returns the name of the method setting the field to null.
// Only nullable fields have one.
func (f Field) Clearer() string { return "Clear" + f.StructName }

// Methods returns the names of the methods generated for the field.
func (f Field) Methods() []string {
	m := []string{f.Getter(), f.Setter()}
	if f.Nullable {
		m = append(m, f.Clearer())
	}
	return m
}

// GoType returns the Go type of the field value.
func (f Field) GoType() jen.Code {
	switch f.Type {
	case field.TypeBool:
		return jen.Bool()
	case field.TypeInt:
		return jen.Int64()
	case field.TypeFloat:
		return jen.Float64()
	case field.TypeTime:
		return jen.Qual("time", "Time")
	case field.TypeUUID:
		return jen.Qual(uuidPkg, "UUID")
	case field.TypeBytes:
		return jen.Index().Byte()
	default:
		return jen.String()
	}
}

// ValueFunc returns the name of the field package function building
// a value of the field type.
func (f Field) ValueFunc() string {
	switch f.Type {
	case field.TypeBool:
		return "Bool"
	case field.TypeInt:
		return "Int"
	case field.TypeFloat:
		return "Float"
	case field.TypeTime:
		return "Time"
	case field.TypeUUID:
		return "UUID"
	case field.TypeBytes:
		return "Bytes"
	default:
		return "String"
	}
}

// ValueMethod returns the name of the field.Value method returning
// the variant of the field type.
func (f Field) ValueMethod() string {
	switch f.Type {
	case field.TypeBool:
		return "Bool"
	case field.TypeInt:
		return "Int64"
	case field.TypeFloat:
		return "Float64"
	case field.TypeTime:
		return "Time"
	case field.TypeUUID:
		return "UUID"
	case field.TypeBytes:
		return "Bytes"
	default:
		return "Str"
	}
}

// DefaultCode returns the expression building the default value of the
// field, or nil if it has none.
func (f Field) DefaultCode() jen.Code {
	if !f.HasDefault {
		return nil
	}
	switch f.Type {
	case field.TypeBool:
		return jen.Qual(fieldPkg, "Bool").Call(jen.Lit(f.Default.Bool()))
	case field.TypeInt:
		return jen.Qual(fieldPkg, "Int").Call(jen.Id(f.Default.String()))
	case field.TypeString:
		return jen.Qual(fieldPkg, "String").Call(jen.Lit(f.Default.Str()))
	case field.TypeFloat:
		if v := f.Default.Float64(); !math.IsNaN(v) && !math.IsInf(v, 0) {
			return jen.Qual(fieldPkg, "Float").Call(jen.Lit(v))
		}
		fallthrough
	default:
		raw, _ := f.column.Default()
		return jen.Qual(fieldPkg, "MustParse").Call(jen.Qual(fieldPkg, f.Type.ConstName()), jen.Lit(raw))
	}
}
