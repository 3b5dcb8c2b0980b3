package gen

import (
	"log/slog"
	"path"
	"runtime"

	"github.com/syssam/recordgen/export"
)

// DefaultHeader is the header comment of generated files.
const DefaultHeader = "Code generated by recordgen. DO NOT EDIT."

// Config holds the global codegen configuration to be
// shared between all generated records.
type Config struct {
	// Package is the import path of the generated package,
	// e.g. "github.com/org/project/models".
	Package string
	// Target is the directory generated files are written to.
	Target string
	// Header is the header comment of generated files.
	// Empty means DefaultHeader.
	Header string
	// DefaultFormat names the export format used for the string conversion
	// of generated classes. Tables may override it.
	DefaultFormat string
	// Formats is the registry format names are validated against.
	// Nil means export.Builtin().
	Formats *export.Registry
	// FormatsRef references, from generated code, a function returning the
	// registry of Formats. It is required when Formats holds formats that
	// are not built in.
	FormatsRef *FuncRef
	// Workers bounds the number of files rendered in parallel.
	// Zero means GOMAXPROCS.
	Workers int
	// Hooks wrap the generator, outermost first.
	Hooks []Hook
	// Logger receives generation events. Nil discards them.
	Logger *slog.Logger
}

// FuncRef references a package level function from generated code.
type FuncRef struct {
	Path string // Import path.
	Name string // Function name.
}

// OutputConfig groups the settings that decide where and how files are written.
type OutputConfig struct {
	Package string
	Target  string
	Header  string
}

// Output returns the output settings of the config.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Package: c.Package,
		Target:  c.Target,
		Header:  c.Header,
	}
}

// PackageName returns the name of the generated package,
// the last element of its import path.
func (c *Config) PackageName() string {
	return path.Base(c.Package)
}

// Registry returns the registry format names are validated against.
func (c *Config) Registry() *export.Registry {
	if c.Formats != nil {
		return c.Formats
	}
	return export.Builtin()
}

func (c *Config) header() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Validate checks the settings every generated class depends on.
func (c *Config) Validate() error {
	switch {
	case c.Package == "" || c.Package == "." || c.Package == "/":
		return NewConfigError("Package", nil, "package cannot be empty")
	case c.DefaultFormat == "":
		return NewConfigError("DefaultFormat", nil, "no default export format configured")
	case !c.Registry().Has(c.DefaultFormat):
		return NewConfigError("DefaultFormat", c.DefaultFormat, "export format is not registered")
	case c.Formats != nil && c.Formats != export.Builtin() && c.FormatsRef == nil:
		return NewConfigError("FormatsRef", nil, "custom format registry requires a function reference for generated code")
	case c.FormatsRef != nil && (c.FormatsRef.Path == "" || !validIdent(c.FormatsRef.Name)):
		return NewConfigError("FormatsRef", *c.FormatsRef, "invalid function reference")
	}
	return nil
}
