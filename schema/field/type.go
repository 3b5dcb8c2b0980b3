package field

import (
	"errors"
	"strconv"
	"strings"
)

// A Type is the semantic type of a column.
type Type uint8

// List of semantic types supported by generated records.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeTime
	TypeUUID
	TypeBytes
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeFloat:   "float",
	TypeString:  "string",
	TypeTime:    "time",
	TypeUUID:    "uuid",
	TypeBytes:   "bytes",
}

// String returns the string representation of a type.
func (t Type) String() string {
	return typeNames[t.orInvalid()]
}

// Valid reports if the given type is a known semantic type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t == TypeInt || t == TypeFloat
}

// ConstName returns the name of the exported constant holding t,
// as referenced by generated code (e.g. "TypeInt").
func (t Type) ConstName() string {
	return constNames[t.orInvalid()]
}

var constNames = [...]string{
	TypeInvalid: "TypeInvalid",
	TypeBool:    "TypeBool",
	TypeInt:     "TypeInt",
	TypeFloat:   "TypeFloat",
	TypeString:  "TypeString",
	TypeTime:    "TypeTime",
	TypeUUID:    "TypeUUID",
	TypeBytes:   "TypeBytes",
}

func (t Type) orInvalid() Type {
	if t < endTypes {
		return t
	}
	return TypeInvalid
}

var (
	// ErrUnsupportedType is returned when a raw column type has no semantic mapping.
	ErrUnsupportedType = errors.New("field: unsupported type")
	// ErrAmbiguousType is returned when a raw column type maps to more than one
	// semantic type and the schema does not carry enough information to decide.
	ErrAmbiguousType = errors.New("field: ambiguous type")
)

// rawTypes maps normalized SQL/schema type names to semantic types.
var rawTypes = func() map[string]Type {
	m := make(map[string]Type)
	add := func(t Type, names ...string) {
		for _, n := range names {
			m[n] = t
		}
	}
	add(TypeBool, "BOOLEAN", "BOOL")
	add(TypeInt, "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT",
		"SERIAL", "BIGSERIAL", "INT2", "INT4", "INT8")
	add(TypeFloat, "FLOAT", "FLOAT4", "FLOAT8", "REAL", "DOUBLE", "DOUBLE PRECISION")
	add(TypeString, "CHAR", "CHARACTER", "VARCHAR", "CHARACTER VARYING", "LONGVARCHAR",
		"TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT", "CLOB", "ENUM")
	add(TypeTime, "DATE", "TIME", "DATETIME", "TIMESTAMP", "TIMESTAMPTZ",
		"TIMESTAMP WITHOUT TIME ZONE", "TIMESTAMP WITH TIME ZONE", "TIME WITHOUT TIME ZONE")
	add(TypeUUID, "UUID")
	add(TypeBytes, "BINARY", "VARBINARY", "LONGVARBINARY", "BLOB", "TINYBLOB",
		"MEDIUMBLOB", "LONGBLOB", "BYTEA")
	return m
}()

// scaled holds the type names whose semantic type depends on their scale.
var scaled = map[string]bool{
	"DECIMAL": true,
	"NUMERIC": true,
	"NUMBER":  true,
}

// Resolve maps a raw column type, as found in schema files or database
// catalogs (e.g. "VARCHAR(255)", "integer", "NUMERIC(10,2)"), to its semantic
// type. A negative scale means the schema declares none; a scale embedded in
// the raw type takes precedence over it.
func Resolve(raw string, scale int) (Type, error) {
	name, args := splitType(raw)
	if name == "" {
		return TypeInvalid, ErrUnsupportedType
	}
	if scaled[name] {
		if s, ok := scaleOf(args); ok {
			scale = s
		}
		switch {
		case scale < 0:
			return TypeInvalid, ErrAmbiguousType
		case scale == 0:
			return TypeInt, nil
		default:
			return TypeFloat, nil
		}
	}
	if t, ok := rawTypes[name]; ok {
		return t, nil
	}
	return TypeInvalid, ErrUnsupportedType
}

// splitType normalizes a raw type and splits it into its base name and
// the comma separated arguments inside parentheses.
func splitType(raw string) (string, []string) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if strings.HasSuffix(s, "[]") {
		return "ARRAY", nil
	}
	var args []string
	if i := strings.IndexByte(s, '('); i >= 0 {
		end := strings.LastIndexByte(s, ')')
		if end > i {
			for _, a := range strings.Split(s[i+1:end], ",") {
				args = append(args, strings.TrimSpace(a))
			}
			s = s[:i] + s[end+1:]
		} else {
			s = s[:i]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), " UNSIGNED")
	return strings.Join(strings.Fields(s), " "), args
}

// scaleOf extracts the scale from type arguments. A precision without
// a scale (e.g. NUMERIC(10)) means a scale of zero.
func scaleOf(args []string) (int, bool) {
	switch len(args) {
	case 1:
		if _, err := strconv.Atoi(args[0]); err == nil {
			return 0, true
		}
	case 2:
		if s, err := strconv.Atoi(args[1]); err == nil {
			return s, true
		}
	}
	return 0, false
}
