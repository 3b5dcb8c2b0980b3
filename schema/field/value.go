package field

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Value is a tagged union holding one column value. The variant is selected
// by the semantic type; a Value that was not set is null for its type.
// The zero Value is an invalid-typed null.
type Value struct {
	typ   Type
	valid bool
	i     int64
	f     float64
	s     string
	t     time.Time
	u     uuid.UUID
	b     []byte
}

// Null returns the unset value of the given type.
func Null(t Type) Value { return Value{typ: t} }

// Bool returns a bool value.
func Bool(v bool) Value {
	var i int64
	if v {
		i = 1
	}
	return Value{typ: TypeBool, valid: true, i: i}
}

// Int returns an int value.
func Int(v int64) Value { return Value{typ: TypeInt, valid: true, i: v} }

// Float returns a float value.
func Float(v float64) Value { return Value{typ: TypeFloat, valid: true, f: v} }

// String returns a string value.
func String(v string) Value { return Value{typ: TypeString, valid: true, s: v} }

// Time returns a time value.
func Time(v time.Time) Value { return Value{typ: TypeTime, valid: true, t: v} }

// UUID returns a uuid value.
func UUID(v uuid.UUID) Value { return Value{typ: TypeUUID, valid: true, u: v} }

// Bytes returns a bytes value holding a copy of v.
// A nil slice is still a set (empty) value.
func Bytes(v []byte) Value {
	b := slices.Clone(v)
	if b == nil {
		b = []byte{}
	}
	return Value{typ: TypeBytes, valid: true, b: b}
}

// Type returns the semantic type of the value.
func (v Value) Type() Type { return v.typ }

// IsNull reports whether the value is unset.
func (v Value) IsNull() bool { return !v.valid }

// Bool returns the bool variant, or false for other variants.
func (v Value) Bool() bool { return v.valid && v.typ == TypeBool && v.i == 1 }

// Int64 returns the int variant, or zero for other variants.
func (v Value) Int64() int64 {
	if v.valid && v.typ == TypeInt {
		return v.i
	}
	return 0
}

// Float64 returns the float variant, or zero for other variants.
func (v Value) Float64() float64 {
	if v.valid && v.typ == TypeFloat {
		return v.f
	}
	return 0
}

// Str returns the string variant, or "" for other variants.
func (v Value) Str() string {
	if v.valid && v.typ == TypeString {
		return v.s
	}
	return ""
}

// Time returns the time variant, or the zero time for other variants.
func (v Value) Time() time.Time {
	if v.valid && v.typ == TypeTime {
		return v.t
	}
	return time.Time{}
}

// UUID returns the uuid variant, or uuid.Nil for other variants.
func (v Value) UUID() uuid.UUID {
	if v.valid && v.typ == TypeUUID {
		return v.u
	}
	return uuid.Nil
}

// Bytes returns a copy of the bytes variant, or nil for other variants.
func (v Value) Bytes() []byte {
	if v.valid && v.typ == TypeBytes {
		return slices.Clone(v.b)
	}
	return nil
}

// Any returns the value as a Go value, or nil when the value is null.
func (v Value) Any() any {
	if !v.valid {
		return nil
	}
	switch v.typ {
	case TypeBool:
		return v.i == 1
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeString:
		return v.s
	case TypeTime:
		return v.t
	case TypeUUID:
		return v.u
	case TypeBytes:
		return slices.Clone(v.b)
	default:
		return nil
	}
}

// String returns the natural textual form of the value,
// or "null" when the value is unset.
func (v Value) String() string {
	if !v.valid {
		return "null"
	}
	switch v.typ {
	case TypeBool:
		return strconv.FormatBool(v.i == 1)
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case TypeString:
		return v.s
	case TypeTime:
		return v.t.Format(time.RFC3339Nano)
	case TypeUUID:
		return v.u.String()
	case TypeBytes:
		return string(v.b)
	default:
		return "null"
	}
}

// Base64 returns the bytes variant encoded with standard base64.
func (v Value) Base64() string {
	return base64.StdEncoding.EncodeToString(v.Bytes())
}

// Equal reports whether v and o hold the same type and contents.
// Two nulls of the same type are equal.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ || v.valid != o.valid {
		return false
	}
	if !v.valid {
		return true
	}
	switch v.typ {
	case TypeFloat:
		return v.f == o.f
	case TypeString:
		return v.s == o.s
	case TypeTime:
		return v.t.Equal(o.t)
	case TypeUUID:
		return v.u == o.u
	case TypeBytes:
		return bytes.Equal(v.b, o.b)
	default:
		return v.i == o.i
	}
}

// ErrTypeMismatch is returned when a Go value cannot be stored in a column.
var ErrTypeMismatch = errors.New("field: type mismatch")

// TypeMismatchError describes a value that does not conform to a column type.
type TypeMismatchError struct {
	Type Type   // Column type.
	Got  string // Go type of the rejected value.
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field: cannot use %s as %s value", e.Got, e.Type)
}

// Is reports whether the target matches ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// Coerce converts a Go value into a Value of type t. Only lossless conversions
// are accepted; nil always yields the null value of t.
func Coerce(t Type, x any) (Value, error) {
	mismatch := func() (Value, error) {
		return Value{}, &TypeMismatchError{Type: t, Got: fmt.Sprintf("%T", x)}
	}
	if x == nil {
		return Null(t), nil
	}
	if v, ok := x.(Value); ok {
		if v.typ != t {
			return mismatch()
		}
		return v, nil
	}
	switch t {
	case TypeBool:
		if b, ok := x.(bool); ok {
			return Bool(b), nil
		}
	case TypeInt:
		if i, ok := toInt64(x); ok {
			return Int(i), nil
		}
	case TypeFloat:
		switch f := x.(type) {
		case float64:
			return Float(f), nil
		case float32:
			return Float(float64(f)), nil
		}
	case TypeString:
		if s, ok := x.(string); ok {
			return String(s), nil
		}
	case TypeTime:
		if tm, ok := x.(time.Time); ok {
			return Time(tm), nil
		}
	case TypeUUID:
		switch u := x.(type) {
		case uuid.UUID:
			return UUID(u), nil
		case [16]byte:
			return UUID(u), nil
		case string:
			if id, err := uuid.Parse(u); err == nil {
				return UUID(id), nil
			}
		}
	case TypeBytes:
		if b, ok := x.([]byte); ok {
			return Bytes(b), nil
		}
	}
	return mismatch()
}

func toInt64(x any) (int64, bool) {
	switch i := x.(type) {
	case int:
		return int64(i), true
	case int8:
		return int64(i), true
	case int16:
		return int64(i), true
	case int32:
		return int64(i), true
	case int64:
		return i, true
	case uint8:
		return int64(i), true
	case uint16:
		return int64(i), true
	case uint32:
		return int64(i), true
	case uint:
		if uint64(i) <= math.MaxInt64 {
			return int64(i), true
		}
	case uint64:
		if i <= math.MaxInt64 {
			return int64(i), true
		}
	}
	return 0, false
}

// timeLayouts are the layouts accepted for textual time values.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
}

// Parse parses the textual form of a value of type t, as found in schema
// default values. The literal "null" (in any case) yields the null value.
func Parse(t Type, raw string) (Value, error) {
	if strings.EqualFold(raw, "null") {
		return Null(t), nil
	}
	switch t {
	case TypeBool:
		b, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return Value{}, fmt.Errorf("field: invalid bool %q: %w", raw, err)
		}
		return Bool(b), nil
	case TypeInt:
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("field: invalid int %q: %w", raw, err)
		}
		return Int(i), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Value{}, fmt.Errorf("field: invalid float %q: %w", raw, err)
		}
		return Float(f), nil
	case TypeString:
		return String(raw), nil
	case TypeTime:
		for _, layout := range timeLayouts {
			if tm, err := time.Parse(layout, raw); err == nil {
				return Time(tm), nil
			}
		}
		return Value{}, fmt.Errorf("field: invalid time %q", raw)
	case TypeUUID:
		u, err := uuid.Parse(raw)
		if err != nil {
			return Value{}, fmt.Errorf("field: invalid uuid %q: %w", raw, err)
		}
		return UUID(u), nil
	case TypeBytes:
		return Bytes([]byte(raw)), nil
	default:
		return Value{}, fmt.Errorf("field: cannot parse value of type %s", t)
	}
}

// MustParse is like Parse but panics if the raw value cannot be parsed.
// It is used by generated code for defaults validated at generation time.
func MustParse(t Type, raw string) Value {
	v, err := Parse(t, raw)
	if err != nil {
		panic(err)
	}
	return v
}
