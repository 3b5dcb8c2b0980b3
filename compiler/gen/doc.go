// Package gen generates persistent record classes from table definitions.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Table definitions (schema.Table, from YAML or a live database)
//	        ↓
//	   Graph (resolved types, one per table)
//	        ↓
//	   Hooks → Builder (jennifer, one file per class, in parallel)
//	        ↓
//	   Generated code (models/author.go, models/book.go, ...)
//
// Each generated class embeds recordgen.Record and adds a constructor, one
// typed getter and setter per column, a clearer per nullable column, and
// a Copy method. Export and state tracking are inherited from the record.
//
// # Key Types
//
//   - Graph: Holds the resolved types of one generated package
//   - Type: Represents a class with its ordered fields
//   - Field: Column with resolved type, default and accessor names
//   - Config: Global configuration for code generation
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: Table or column definition errors, which skip their table
//   - ConfigError: Configuration errors, which abort generation
//   - GenerationError: Rendering, formatting or writing errors
//
// Example error handling:
//
//	err := gen.Generate(ctx, config, tables...)
//	for _, e := range gen.SchemaErrors(err) {
//	    log.Printf("skipped %s: %v", e.Table, e)
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithPackage("github.com/org/project/models"),
//	    gen.WithTarget("./models"),
//	    gen.WithDefaultFormat("text"),
//	)
//
// Additional options available:
//   - WithHeader: Custom file header
//   - WithFormats: Registry with custom export formats
//   - WithWorkers: Bound the number of files rendered in parallel
//   - WithHooks: Wrap the generator with middleware
//   - WithLogger: Receive generation events
package gen
