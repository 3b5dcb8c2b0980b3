package recordgen

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn is returned when a record has no column of a given name.
var ErrUnknownColumn = errors.New("recordgen: unknown column")

// UnknownColumnError represents an error when a column lookup by name fails.
type UnknownColumnError struct {
	label  string
	column string
}

// Error returns the error string.
func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("recordgen: %s has no column %q", e.label, e.column)
}

// Is reports whether the target error matches UnknownColumnError.
// This allows errors.Is(err, ErrUnknownColumn) to return true.
func (e *UnknownColumnError) Is(err error) bool {
	return err == ErrUnknownColumn
}

// Label returns the class name of the record.
func (e *UnknownColumnError) Label() string {
	return e.label
}

// Column returns the requested column name.
func (e *UnknownColumnError) Column() string {
	return e.column
}

// NewUnknownColumnError returns a new UnknownColumnError.
func NewUnknownColumnError(label, column string) *UnknownColumnError {
	return &UnknownColumnError{label: label, column: column}
}

// IsUnknownColumn returns true if the error is an UnknownColumnError.
func IsUnknownColumn(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownColumnError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownColumn)
}

// AssignError wraps a failure to assign a value to a record column.
type AssignError struct {
	Class  string // Class name of the record.
	Column string // Column name.
	Err    error  // Underlying error.
}

// Error returns the error string.
func (e *AssignError) Error() string {
	return fmt.Sprintf("recordgen: assign %s.%s: %v", e.Class, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *AssignError) Unwrap() error {
	return e.Err
}

// IsAssignError returns true if the error is an AssignError.
func IsAssignError(err error) bool {
	if err == nil {
		return false
	}
	var e *AssignError
	return errors.As(err, &e)
}
