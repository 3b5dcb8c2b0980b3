// Package export renders the ordered fields of a record into serialized
// representations.
//
// A [Format] is a named, stateless strategy. Formats are collected in an
// immutable [Registry]; [Builtin] returns the shared registry of the
// formats shipped with recordgen:
//
//	text     Name: Value lines, "null" for unset values
//	xml      <data> document, strings in CDATA, unset values omitted
//	json     ordered object, unset values as null
//	yaml     ordered mapping, unset values as null
//	csv      header row and value row, unset values empty
//	msgpack  ordered map
//
// Extending a registry never alters the formats it already holds:
//
//	reg, err := export.Builtin().With(export.FormatFunc{
//	    FormatName: "keys",
//	    Fn: func(w io.Writer, fields export.Fields) error {
//	        _, err := io.WriteString(w, strings.Join(fields.Names(), ","))
//	        return err
//	    },
//	})
package export
