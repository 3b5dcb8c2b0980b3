package export

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Well-known format names.
const (
	Text    = "text"
	XML     = "xml"
	JSON    = "json"
	YAML    = "yaml"
	CSV     = "csv"
	MsgPack = "msgpack"
)

// Registry maps format names to formats. Names are matched without regard
// to case. A Registry is immutable after construction and safe for
// concurrent use.
type Registry struct {
	formats map[string]Format
}

// NewRegistry returns a registry holding the given formats.
// It fails if a format has an empty name or two formats share a name.
func NewRegistry(formats ...Format) (*Registry, error) {
	r := &Registry{formats: make(map[string]Format, len(formats))}
	if err := r.add(formats); err != nil {
		return nil, err
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(formats ...Format) *Registry {
	r, err := NewRegistry(formats...)
	if err != nil {
		panic(err)
	}
	return r
}

var builtin = sync.OnceValue(func() *Registry {
	return MustRegistry(
		TextFormat{},
		XMLFormat{},
		JSONFormat{},
		YAMLFormat{},
		CSVFormat{},
		MsgPackFormat{},
	)
})

// Builtin returns the shared registry of formats shipped with recordgen:
// text, xml, json, yaml, csv and msgpack.
func Builtin() *Registry { return builtin() }

// With returns a copy of r extended with the given formats. The receiver
// is left untouched, and registering a name that r already holds fails.
func (r *Registry) With(formats ...Format) (*Registry, error) {
	nr := &Registry{formats: make(map[string]Format, len(r.formats)+len(formats))}
	for k, f := range r.formats {
		nr.formats[k] = f
	}
	if err := nr.add(formats); err != nil {
		return nil, err
	}
	return nr, nil
}

func (r *Registry) add(formats []Format) error {
	fold := cases.Fold()
	var errs []error
	for _, f := range formats {
		name := strings.TrimSpace(f.Name())
		if name == "" {
			errs = append(errs, fmt.Errorf("export: format %T has no name", f))
			continue
		}
		key := fold.String(name)
		if _, ok := r.formats[key]; ok {
			errs = append(errs, &DuplicateFormatError{Name: name})
			continue
		}
		r.formats[key] = f
	}
	return errors.Join(errs...)
}

// Lookup returns the format registered under name.
func (r *Registry) Lookup(name string) (Format, error) {
	if f, ok := r.formats[cases.Fold().String(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return nil, &UnknownFormatError{Name: name, Known: r.Names()}
}

// Has reports whether a format is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.formats[cases.Fold().String(strings.TrimSpace(name))]
	return ok
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for _, f := range r.formats {
		names = append(names, strings.TrimSpace(f.Name()))
	}
	slices.Sort(names)
	return names
}

// Export renders fields with the named format.
func (r *Registry) Export(w io.Writer, name string, fields Fields) error {
	f, err := r.Lookup(name)
	if err != nil {
		return err
	}
	return f.Export(w, fields)
}
