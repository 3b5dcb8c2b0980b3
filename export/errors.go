package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when an export format is not registered.
var ErrUnknownFormat = errors.New("export: unknown format")

// UnknownFormatError is returned by a registry lookup for a format name
// that is not registered.
type UnknownFormatError struct {
	Name  string   // Requested format.
	Known []string // Registered formats, sorted.
}

// Error returns the error string.
func (e *UnknownFormatError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("export: unknown format %q", e.Name)
	}
	return fmt.Sprintf("export: unknown format %q (registered: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Is reports whether the target error matches UnknownFormatError.
// This allows errors.Is(err, ErrUnknownFormat) to return true.
func (e *UnknownFormatError) Is(err error) bool {
	return err == ErrUnknownFormat
}

// IsUnknownFormat returns true if the error is an UnknownFormatError.
func IsUnknownFormat(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownFormatError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownFormat)
}

// DuplicateFormatError is returned when two formats share a name.
type DuplicateFormatError struct {
	Name string
}

// Error returns the error string.
func (e *DuplicateFormatError) Error() string {
	return fmt.Sprintf("export: format %q registered twice", e.Name)
}
