// Package schema provides the resolved data model recordgen generates
// records from.
//
// A [Table] is an ordered list of [Column] definitions plus optional
// generation overrides. Both are immutable once constructed; the option
// functions below are only applied by the constructors.
//
// # Quick Start
//
//	author := schema.NewTable("author", []*schema.Column{
//	    schema.NewColumn("id", "INTEGER", schema.PrimaryKey(), schema.NotNull()),
//	    schema.NewColumn("first_name", "VARCHAR(128)", schema.NotNull()),
//	    schema.NewColumn("last_name", "VARCHAR(128)", schema.NotNull()),
//	    schema.NewColumn("email", "VARCHAR(128)"),
//	    schema.NewColumn("age", "INTEGER"),
//	})
//
//	publisher := schema.NewTable("publisher", []*schema.Column{
//	    schema.NewColumn("id", "INTEGER", schema.PrimaryKey(), schema.NotNull()),
//	    schema.NewColumn("name", "VARCHAR(128)", schema.Default("Penguin")),
//	}, schema.DefaultFormat("xml"))
//
// # Column Types
//
// Column types are kept as written (e.g. "VARCHAR(255)", "NUMERIC(10,2)")
// and resolved to semantic types by [field.Resolve] at generation time,
// so tables can be built from any source: YAML schema files or a live
// database catalog (see package compiler/load).
package schema
