// Package field defines the semantic column types understood by recordgen
// and the Value union generated records store per column.
//
// Raw column types, as written in schema files or reported by database
// catalogs, are mapped to a semantic type with [Resolve]:
//
//	field.Resolve("VARCHAR(255)", -1)  // TypeString
//	field.Resolve("NUMERIC(10,2)", -1) // TypeFloat
//	field.Resolve("NUMERIC", 0)        // TypeInt
//	field.Resolve("NUMERIC", -1)       // ErrAmbiguousType
//
// A [Value] holds exactly one variant for its type or is null:
//
//	field.String("John").String()      // "John"
//	field.Null(field.TypeInt).String() // "null"
package field
