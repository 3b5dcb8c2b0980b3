// Package load reads table definitions from outside the program: YAML
// schema files and the catalogs of live sqlite, mysql and postgres
// databases.
//
//	f, err := load.ReadFile("schema.yaml")
//	if err != nil {
//	    return err
//	}
//	tables := f.Schema()
//
// Inspected catalogs can be written back as a schema file:
//
//	tables, err := load.Inspect(ctx, db, load.Postgres)
//	...
//	out, err := load.FromTables(tables).Marshal()
package load
